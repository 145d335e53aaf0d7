package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the key for storing the authenticated user's ID in echo.Context.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the authenticated user's ID in echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID extracts the authenticated user's ID from echo.Context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// KeyCaller is the key for storing the calling service's name in echo.Context.
const KeyCaller ContextKey = "caller"

// SetCaller stores the authenticated service's name in echo.Context.
func SetCaller(c echo.Context, caller string) {
	c.Set(string(KeyCaller), caller)
}

// GetCaller extracts the authenticated service's name from echo.Context.
func GetCaller(c echo.Context) (string, bool) {
	caller, ok := c.Get(string(KeyCaller)).(string)

	return caller, ok && caller != ""
}
