package webhook

import "net/http"

func OkResponse() Response {
	return Response{HttpStatus: http.StatusOK}
}

func BadRequestResponse() Response {
	return Response{HttpStatus: http.StatusBadRequest}
}

func UnauthorizedResponse() Response {
	return Response{HttpStatus: http.StatusUnauthorized}
}

func MethodNotAllowedResponse() Response {
	return Response{HttpStatus: http.StatusMethodNotAllowed}
}

func InternalServerErrorResponse() Response {
	return Response{HttpStatus: http.StatusInternalServerError}
}
