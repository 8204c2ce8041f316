// Package restjudge exposes the judge harness over a REST endpoint.
//
// Judging a compiled language writes the temporary binary with a fixed name
// next to the solution source, so concurrent requests against the same
// solution directory collide, exactly as concurrent CLI runs would.
package restjudge

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/acmob/solrun/judger"
	"github.com/acmob/solrun/language"
	"github.com/acmob/solrun/problem"
)

// Register registers the judge handler
type Register interface {
	Register(*gin.Engine)
}

// Request selects the solution to judge. Event defaults to Main.
type Request struct {
	Year     string `json:"year" binding:"required"`
	Event    string `json:"event"`
	Problem  string `json:"problem" binding:"required"`
	Language string `json:"language" binding:"required"`
	Solution int    `json:"solution" binding:"required"`
}

// CaseResult is the JSON form of one verdict. Output carries the observed
// output for failing cases, untrimmed.
type CaseResult struct {
	Index  int    `json:"index"`
	Passed bool   `json:"passed"`
	Output string `json:"output,omitempty"`
}

// Response is the JSON form of a run report.
type Response struct {
	Passed bool         `json:"passed"`
	Cases  []CaseResult `json:"cases"`
}

type judgeHandle struct {
	root     string
	registry *language.Registry
	judger   *judger.Judger
	logger   *zap.Logger
}

// NewJudgeHandle creates a new judge handle serving solutions under root.
func NewJudgeHandle(root string, registry *language.Registry, j *judger.Judger, logger *zap.Logger) Register {
	return &judgeHandle{
		root:     root,
		registry: registry,
		judger:   j,
		logger:   logger,
	}
}

func (h *judgeHandle) Register(r *gin.Engine) {
	r.POST("/judge", h.handleJudge)
}

func (h *judgeHandle) handleJudge(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, err.Error())
		return
	}
	if _, err := strconv.Atoi(req.Year); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, "year must be numeric")
		return
	}
	if req.Event == "" {
		req.Event = string(problem.EventMain)
	}
	event, err := problem.ParseEvent(req.Event)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, err.Error())
		return
	}
	spec, ok := h.registry.Get(req.Language)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, "unknown language: "+req.Language)
		return
	}

	srcPath := problem.SolutionPath(h.root, req.Year, event, req.Problem, spec.Name, spec.Ext, req.Solution)
	if _, err := os.Stat(srcPath); err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, "solution file not found")
		return
	}
	cases, err := problem.LoadCases(problem.TestsDir(h.root, req.Year, event, req.Problem))
	if err != nil {
		ctx.Error(err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Sugar().Debugf("judge request: %+v", req)
	report, err := h.judger.Run(ctx.Request.Context(), spec, srcPath, cases)
	if err != nil {
		// ToolNotFound and spawn failures both land here; the server has
		// no better status than 500 for a broken runtime environment.
		ctx.Error(err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, err.Error())
		return
	}

	rsp := Response{Passed: report.AllPassed(), Cases: make([]CaseResult, 0, len(report.Verdicts))}
	for _, v := range report.Verdicts {
		c := CaseResult{Index: v.Index, Passed: v.Passed}
		if !v.Passed {
			c.Output = v.Output
		}
		rsp.Cases = append(rsp.Cases, c)
	}
	ctx.JSON(http.StatusOK, rsp)
}
