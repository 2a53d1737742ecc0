package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the envelope wrapping every JSON body. Data always holds an
// array, even for single-record results.
type Response struct {
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message,omitempty"`
}

// JSON writes a response envelope with the given status code
func JSON(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{
		Timestamp: time.Now(),
		Data:      data,
		Message:   message,
	})
}

// OK writes a 200 response
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data, http.StatusText(http.StatusOK))
}

// Created writes a 201 response with a Location header pointing at the
// new record.
func Created(w http.ResponseWriter, data interface{}, location string) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, data, http.StatusText(http.StatusCreated))
}

// NoContent writes a bare 204 response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes an error envelope with no data
func Error(w http.ResponseWriter, statusCode int, message string) {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	JSON(w, statusCode, nil, message)
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
