package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Every successful response goes out as {"data": ...} so the client decodes
// mock and real traffic identically. Errors stay on echo's {"message": ...}.
func OK(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"data": payload})
}

func Created(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusCreated, echo.Map{"data": payload})
}

func Message(c echo.Context, text string) error {
	return OK(c, echo.Map{"message": text})
}
