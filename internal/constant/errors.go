package constant

import (
	"net/http"

	"github.com/skillwaves/skillwaves-server/internal/model/response"
)

var BAD_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Bad request",
}

var INVALID_REQUEST = response.ResponseData{
	Ec:  http.StatusBadRequest,
	Msg: "Invalid request payload",
}

var UNAUTHORIZED = response.ResponseData{
	Ec:  http.StatusUnauthorized,
	Msg: "Unauthorized access",
}

var FORBIDDEN = response.ResponseData{
	Ec:  http.StatusForbidden,
	Msg: "Forbidden access",
}

var NOT_FOUND = response.ResponseData{
	Ec:  http.StatusNotFound,
	Msg: "Not found",
}

var INTERNAL_SERVER_ERROR = response.ResponseData{
	Ec:  http.StatusInternalServerError,
	Msg: "Internal server error",
}
