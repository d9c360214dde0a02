package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Jackcomputers-app/flyhightide/database"
	"github.com/Jackcomputers-app/flyhightide/errors"
	"github.com/Jackcomputers-app/flyhightide/model"
	"github.com/Jackcomputers-app/flyhightide/utils"
)

func CreateContact(c *fiber.Ctx) error {
	newContact := new(model.ContactRequest)

	if err := c.BodyParser(newContact); err != nil {
		utils.GetLogger().Warn("unparseable contact payload", zap.Error(err))
		return errors.RaiseBadRequestError(c, "Failed to send message")
	}
	newContact.Name = strings.TrimSpace(newContact.Name)

	if validationErr := contactRequestValidation(newContact); validationErr != nil {
		utils.GetLogger().Warn("rejected contact request", zap.Error(validationErr))
		return errors.RaiseBadRequestError(c, "Failed to send message")
	}

	contact, dberr := database.DB.CreateContact(c.Context(), *newContact)
	if dberr != nil {
		utils.GetLogger().Error("cannot store contact", zap.Error(dberr))
		return errors.RaiseInternalServerError(c, "Failed to send message")
	}

	return c.JSON(contact)
}

func GetContacts(c *fiber.Ctx) error {
	contacts, dberr := database.DB.GetContacts(c.Context())
	if dberr != nil {
		utils.GetLogger().Error("cannot read contacts", zap.Error(dberr))
		return errors.RaiseInternalServerError(c, "Failed to fetch messages")
	}

	return c.JSON(contacts)
}

func contactRequestValidation(request *model.ContactRequest) error {
	if request.Name == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(request.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !model.IsContactSubject(request.Subject) {
		return fmt.Errorf("unknown subject %q", request.Subject)
	}
	if strings.TrimSpace(request.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
