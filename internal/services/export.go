package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jstittsworth/ninecat-analyzer/internal/analysis"
	"github.com/jstittsworth/ninecat-analyzer/internal/models"
)

// Sheet is an already-computed table ready for the spreadsheet sink: a header
// row plus rows of primitives.
type Sheet struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// ExportService converts computed analysis results into tabular sheets.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// RankingsSheet tabulates a player ranking: one row per player, one column
// per category z-score.
func (s *ExportService) RankingsSheet(entries []analysis.RankingEntry) Sheet {
	header := []string{"Rank", "Player", "Team", "Total Value"}
	header = append(header, models.Categories...)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Rank),
			e.PlayerName,
			e.Team,
			formatFloat(e.TotalValue),
		}
		for _, cat := range models.Categories {
			row = append(row, formatFloat(e.CategoryScores[cat]))
		}
		rows = append(rows, row)
	}

	return Sheet{Title: "Player Rankings", Header: header, Rows: rows}
}

// MatchupSheet tabulates a matchup prediction, one row per category.
func (s *ExportService) MatchupSheet(result *analysis.MatchupResult) Sheet {
	header := []string{"Category", "My Value", "Opponent Value", "Winner", "Confidence"}

	rows := make([][]string, 0, len(result.CategoryBreakdown))
	for _, pred := range result.CategoryBreakdown {
		rows = append(rows, []string{
			pred.Category,
			formatCategoryValue(pred.Category, pred.MyValue),
			formatCategoryValue(pred.Category, pred.OpponentValue),
			pred.Winner,
			pred.Confidence,
		})
	}

	return Sheet{Title: "Matchup Prediction", Header: header, Rows: rows}
}

// TradeSheet tabulates a trade evaluation's category deltas.
func (s *ExportService) TradeSheet(result *analysis.TradeResult) Sheet {
	header := []string{"Category", "Before", "After", "Change", "Change %", "Impact"}

	rows := make([][]string, 0, len(models.Categories))
	for _, cat := range models.Categories {
		change := result.CategoryChanges[cat]
		rows = append(rows, []string{
			cat,
			formatCategoryValue(cat, change.Before),
			formatCategoryValue(cat, change.After),
			formatCategoryValue(cat, change.Change),
			fmt.Sprintf("%.1f", change.ChangePct),
			change.Impact,
		})
	}

	return Sheet{Title: "Trade Evaluation", Header: header, Rows: rows}
}

// RenderCSV renders a sheet as CSV bytes.
func (s *ExportService) RenderCSV(sheet Sheet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(sheet.Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range sheet.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Percentage categories keep three decimals, counting categories none.
func formatCategoryValue(category string, v float64) string {
	switch category {
	case models.CategoryFGPct, models.CategoryFTPct:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
