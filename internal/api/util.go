package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/engine"
	"github.com/paintmyrock/crazyfun/internal/logging"
	"github.com/paintmyrock/crazyfun/internal/service"
)

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// (CreatedAt, UpdatedAt) to snake_case and strips the internal row id and
// soft-delete marker, which clients never address.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		if val, ok := vv["CreatedAt"]; ok {
			vv["created_at"] = val
			delete(vv, "CreatedAt")
		}
		if val, ok := vv["UpdatedAt"]; ok {
			vv["updated_at"] = val
			delete(vv, "UpdatedAt")
		}
		delete(vv, "DeletedAt")
		delete(vv, "ID")
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals the given value into JSON, then decodes
// into an interface{} and normalizes the GORM model keys. It is used for
// every response that carries a persisted record.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}

func respondRecord(c *gin.Context, status int, v interface{}) {
	out, err := MarshalIntoSnakeTimestamps(v)
	if err != nil {
		logging.Error("failed to encode response", err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	c.JSON(status, out)
}

// respondError maps service and engine errors to HTTP responses. Anything
// unknown is logged and reported as a 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var status int
	var msg string
	switch {
	case errors.Is(err, service.ErrTrainerNotFound):
		status, msg = http.StatusNotFound, constants.ErrTrainerNotFound
	case errors.Is(err, service.ErrFusionNotInCollection):
		status, msg = http.StatusNotFound, constants.ErrFusionNotInCollection
	case errors.Is(err, service.ErrUnknownEntity):
		status, msg = http.StatusBadRequest, constants.ErrUnknownEntity
	case errors.Is(err, service.ErrSelfFusion):
		status, msg = http.StatusBadRequest, constants.ErrSelfFusion
	case errors.Is(err, service.ErrInvalidUsername):
		status, msg = http.StatusBadRequest, constants.ErrInvalidUsername
	case errors.Is(err, service.ErrInvalidAvatar):
		status, msg = http.StatusBadRequest, constants.ErrInvalidAvatar
	case errors.Is(err, service.ErrInvalidOpponentCount):
		status, msg = http.StatusBadRequest, constants.ErrInvalidOpponentCount
	case errors.Is(err, engine.ErrUnknownMove):
		status, msg = http.StatusBadRequest, constants.ErrUnknownMove
	case errors.Is(err, engine.ErrBattleNotActive):
		status, msg = http.StatusConflict, constants.ErrBattleNotActive
	case errors.Is(err, engine.ErrNotYourTurn):
		status, msg = http.StatusConflict, constants.ErrNotYourTurn
	case errors.Is(err, service.ErrBattleInProgress):
		status, msg = http.StatusConflict, constants.ErrBattleInProgress
	default:
		logging.Error(fallback, err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		status, msg = http.StatusInternalServerError, fallback
	}
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
}
