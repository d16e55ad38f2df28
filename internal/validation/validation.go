package validation

import (
	"bytes"
	"io"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/skillwaves/skillwaves-server/internal/constant"
)

var validate *validator.Validate = validator.New()

func isEmptyInterface[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t == reflect.TypeOf((*any)(nil)).Elem()
}

// Validate binds and validates the request body (B), URI params (P) and query
// string (Q) into their typed DTOs before the handler runs. Pass `any` for a
// slot the route does not use. Validated values land in the gin context under
// "validatedBody", "validatedParams" and "validatedQuery".
func Validate[B any, P any, Q any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		resData := constant.INVALID_REQUEST

		// --- Body ---
		if !isEmptyInterface[B]() {
			var body B

			rawData, err := io.ReadAll(c.Request.Body)
			if err != nil {
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))

			if err := c.ShouldBindJSON(&body); err != nil {
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			if err := validate.Struct(body); err != nil {
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}

			// Restore the body for any downstream reader.
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))
			c.Set("validatedBody", body)
		}

		// --- Params ---
		if !isEmptyInterface[P]() {
			var params P

			if err := c.ShouldBindUri(&params); err != nil {
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			if err := validate.Struct(params); err != nil {
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}

			c.Set("validatedParams", params)
		}

		// --- Query ---
		if !isEmptyInterface[Q]() {
			var query Q

			if err := c.ShouldBindQuery(&query); err != nil {
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			if err := validate.Struct(query); err != nil {
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}

			c.Set("validatedQuery", query)
		}

		c.Next()
	}
}

// Body returns the DTO bound by Validate for the current request.
func Body[B any](c *gin.Context) B {
	v, _ := c.Get("validatedBody")
	body, _ := v.(B)
	return body
}

// Params returns the URI param DTO bound by Validate.
func Params[P any](c *gin.Context) P {
	v, _ := c.Get("validatedParams")
	params, _ := v.(P)
	return params
}

// Query returns the query DTO bound by Validate.
func Query[Q any](c *gin.Context) Q {
	v, _ := c.Get("validatedQuery")
	query, _ := v.(Q)
	return query
}
