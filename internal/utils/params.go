package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// IDParam parses the named numeric path parameter.
func IDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
