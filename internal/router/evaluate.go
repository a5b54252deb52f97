package router

import (
	"net/http"

	"github.com/formarank/formarank/internal/dataset"
	"github.com/formarank/formarank/internal/objective"
	"github.com/labstack/echo/v4"
)

type EvaluateRouter struct {
	e *echo.Echo
}

func NewEvaluateRouter(e *echo.Echo) *EvaluateRouter {
	return &EvaluateRouter{e: e}
}

func (r *EvaluateRouter) Bind() {
	r.e.POST("/evaluate", r.evaluateHandler)
}

type EvaluateRequest struct {
	Numeric     map[string][]float64      `json:"numeric"`
	Categorical map[string][]string       `json:"categorical,omitempty"`
	Evaluators  []objective.EvaluatorSpec `json:"evaluators"`
}

type EvaluateResponse struct {
	SnapshotID string    `json:"snapshot_id"`
	Targets    []float64 `json:"targets"`
}

// evaluateHandler computes the target vector for an inline dataset.
// @Summary Evaluate ranking-quality metrics
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "dataset columns and evaluator specifications"
// @Success 200 {object} EvaluateResponse
// @Router /evaluate [post]
func (r *EvaluateRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if len(req.Numeric) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "at least one numeric column is required"})
	}
	if len(req.Evaluators) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "at least one evaluator is required"})
	}

	rows := -1
	for _, col := range req.Numeric {
		if rows == -1 {
			rows = len(col)
		}
		if len(col) != rows {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "numeric columns differ in length"})
		}
	}

	frame := dataset.NewFrame(rows)
	for name, col := range req.Numeric {
		if err := frame.SetNumeric(name, col); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	for name, col := range req.Categorical {
		if err := frame.SetCategorical(name, col); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}

	snap := dataset.NewSnapshot(frame)
	targets, err := objective.EvaluateTargets(snap, req.Evaluators)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, EvaluateResponse{
		SnapshotID: snap.ID.String(),
		Targets:    targets,
	})
}
