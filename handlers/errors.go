package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindspace/platform"
	"mindspace/services/booking"
	"mindspace/utils"
)

// respondError maps service failures onto HTTP statuses and the shared error
// envelope. Typed booking errors carry their own code; platform failures are
// split into upstream rejection (502) and unreachable network (503).
func respondError(c *gin.Context, err error) {
	var bErr *booking.BookingError
	if errors.As(err, &bErr) {
		status := http.StatusInternalServerError
		switch bErr.Code {
		case booking.CodeValidation:
			status = http.StatusBadRequest
		case booking.CodeNotFound:
			status = http.StatusNotFound
		case booking.CodeConflict:
			status = http.StatusConflict
		}
		utils.JSONError(c, status, bErr.Message, bErr.Code)
		return
	}

	var sErr *platform.ServerError
	if errors.As(err, &sErr) {
		utils.JSONError(c, http.StatusBadGateway, sErr.Error(), "platform rejected the request")
		return
	}

	var nErr *platform.NetworkError
	if errors.As(err, &nErr) {
		utils.JSONError(c, http.StatusServiceUnavailable, "could not reach the platform", nErr.Error())
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
