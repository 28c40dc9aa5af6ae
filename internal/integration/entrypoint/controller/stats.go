// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneybook/backend/internal/application/usecase/stats"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// StatsController handles reporting endpoints.
type StatsController struct {
	bookStatsUseCase    *stats.BookStatsUseCase
	monthlyStatsUseCase *stats.MonthlyStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	bookStatsUseCase *stats.BookStatsUseCase,
	monthlyStatsUseCase *stats.MonthlyStatsUseCase,
) *StatsController {
	return &StatsController{
		bookStatsUseCase:    bookStatsUseCase,
		monthlyStatsUseCase: monthlyStatsUseCase,
	}
}

// statsWindow parses the optional startDate and endDate query parameters.
func statsWindow(ctx *gin.Context) (start, end *time.Time) {
	if raw := ctx.Query("startDate"); raw != "" {
		if date, err := time.Parse(dateLayout, raw); err == nil {
			start = &date
		}
	}
	if raw := ctx.Query("endDate"); raw != "" {
		if date, err := time.Parse(dateLayout, raw); err == nil {
			end = &date
		}
	}
	return start, end
}

// BookStats handles GET /books/:bookId/stats requests: totals in base
// currency plus per-account, per-category and per-day buckets.
func (c *StatsController) BookStats(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	start, end := statsWindow(ctx)

	output, err := c.bookStatsUseCase.Execute(ctx.Request.Context(), stats.BookStatsInput{
		BookID:      bookID,
		RequesterID: userID,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookStatsResponse(output))
}

// MonthlyStats handles GET /books/:bookId/stats/monthly requests.
func (c *StatsController) MonthlyStats(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	bookID, ok := uuidParam(ctx, "bookId")
	if !ok {
		return
	}

	start, end := statsWindow(ctx)

	output, err := c.monthlyStatsUseCase.Execute(ctx.Request.Context(), stats.MonthlyStatsInput{
		BookID:      bookID,
		RequesterID: userID,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatsResponse(output))
}
