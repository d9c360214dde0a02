package handlers

// Exposes the unexported validator to the external handlers_test package,
// which cannot live in package handlers without creating an import cycle
// through router.
var BookingRequestValidation = bookingRequestValidation
