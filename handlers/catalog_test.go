package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jackcomputers-app/flyhightide/model"
)

func TestCatalogRoutes(t *testing.T) {
	tests := []Test{
		{description: "all locations", method: "GET", route: "/api/locations", expectedCode: 200},
		{description: "one location", method: "GET", route: "/api/locations/southport", expectedCode: 200},
		{description: "unknown location", method: "GET", route: "/api/locations/atlantis", expectedCode: 404},
		{description: "all tours", method: "GET", route: "/api/tours", expectedCode: 200},
		{description: "one tour", method: "GET", route: "/api/tours/st-simons-jekyll", expectedCode: 200},
		{description: "unknown tour", method: "GET", route: "/api/tours/st-simons-submarine", expectedCode: 404},
	}

	app := newTestApp()

	for _, test := range tests {
		req, _ := http.NewRequest(test.method, test.route, nil)
		res, err := app.Test(req, -1)
		assert.NoErrorf(t, err, test.description)
		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
	}
}

func TestGetToursFilteredByLocation(t *testing.T) {
	app := newTestApp()

	req, _ := http.NewRequest("GET", "/api/tours?location=st-simons", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	var tours []model.Tour
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&tours))
	assert.Len(t, tours, 3)
	for _, tour := range tours {
		assert.Equal(t, "st-simons", tour.Location)
	}
}
