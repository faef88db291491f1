package agentrpc

import (
	"net/http"

	"github.com/fxamacker/cbor/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxfi/fingerprint/pkg/bn254"
)

const cborContentType = "application/cbor"

// Cooperator is the local capability the HTTP handler delegates to: an
// agent's own Shamir share and the arithmetic needed to answer a
// cooperate request (§6, "AgentService::cooperate").
type Cooperator interface {
	Cooperate(point bn254.Point, coefficient bn254.Element) (bn254.Point, error)
}

// NewServer builds a gin.Engine exposing POST /cooperate, the single
// server-side method every agent in a cooperative deployment runs.
func NewServer(cooperator Cooperator, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/cooperate", func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		var req CooperateRequest
		if err := cbor.Unmarshal(body, &req); err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		point, err := bn254.PointFromBytes(req.Point)
		if err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}
		coefficient, err := bn254.FromBytes(req.Coefficient)
		if err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}

		tag := deriveRoundTag(req.Point, req.Coefficient)
		logger.Debug("cooperate received", zap.Binary("round_tag", tag[:]))

		result, err := cooperator.Cooperate(point, coefficient)
		if err != nil {
			logger.Warn("cooperate failed", zap.Binary("round_tag", tag[:]), zap.Error(err))
			writeError(c, http.StatusInternalServerError, err)
			return
		}

		resp := CooperateResponse{Point: result.Bytes()}
		encoded, err := cbor.Marshal(resp)
		if err != nil {
			writeError(c, http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusOK, cborContentType, encoded)
	})

	return r
}

func writeError(c *gin.Context, status int, err error) {
	encoded, marshalErr := cbor.Marshal(ErrorResponse{Error: err.Error()})
	if marshalErr != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, cborContentType, encoded)
}
