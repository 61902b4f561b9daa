package httpapi

import (
	"math"
	"time"

	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/score"
	"github.com/riskibarqy/golf-twitchers/internal/domain/session"
	"github.com/riskibarqy/golf-twitchers/internal/domain/summary"
	"github.com/riskibarqy/golf-twitchers/internal/usecase"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshSessionRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type playerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	FullName string `json:"full_name" validate:"omitempty,max=200"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type courseRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type createRoundRequest struct {
	Date     string              `json:"date" validate:"required,datetime=2006-01-02"`
	CourseID int64               `json:"course_id" validate:"required,gt=0"`
	Scores   []scoreEntryRequest `json:"scores" validate:"max=64,dive"`
}

type scoreEntryRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
	Score    *int  `json:"score" validate:"omitempty,min=0"`
	Birdies  int   `json:"birdies" validate:"min=0,max=18"`
	Eagles   int   `json:"eagles" validate:"min=0,max=18"`
	Hat      bool  `json:"hat"`
}

type updateScoreRequest struct {
	Score   *int `json:"score" validate:"omitempty,min=0"`
	Birdies int  `json:"birdies" validate:"min=0,max=18"`
	Eagles  int  `json:"eagles" validate:"min=0,max=18"`
	Hat     bool `json:"hat"`
}

type sessionDTO struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}

type userDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type playerDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type courseDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type roundDTO struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	CourseID *int64 `json:"course_id"`
}

type scoreDTO struct {
	ID       int64  `json:"id"`
	RoundID  int64  `json:"round_id"`
	PlayerID *int64 `json:"player_id"`
	Score    *int   `json:"score"`
	Birdies  int    `json:"birdies"`
	Eagles   int    `json:"eagles"`
	Hat      bool   `json:"hat"`
}

type recordedRoundDTO struct {
	Round  roundDTO   `json:"round"`
	Scores []scoreDTO `json:"scores"`
}

type roundSheetDTO struct {
	Round        roundDTO            `json:"round"`
	Course       *courseDTO          `json:"course"`
	Lines        []roundSheetLineDTO `json:"lines"`
	Unattributed []scoreDTO          `json:"unattributed,omitempty"`
}

type roundSheetLineDTO struct {
	Player playerDTO `json:"player"`
	Score  *scoreDTO `json:"score"`
}

type flatRowDTO struct {
	RoundID   *int64  `json:"round_id"`
	RoundDate *string `json:"round_date"`
	Course    *string `json:"course"`
	CourseID  *int64  `json:"course_id"`
	PlayerID  *int64  `json:"player_id"`
	Player    *string `json:"player"`
	Score     *int    `json:"score"`
	Birdies   int     `json:"birdies"`
	Eagles    int     `json:"eagles"`
	Hat       bool    `json:"hat"`
}

type playerAverageDTO struct {
	PlayerID int64   `json:"player_id"`
	Player   string  `json:"player"`
	Average  float64 `json:"average"`
	Rounds   int     `json:"rounds"`
}

type seriesPointDTO struct {
	RoundID int64   `json:"round_id"`
	Date    string  `json:"date"`
	Course  *string `json:"course"`
	Score   *int    `json:"score"`
	Birdies int     `json:"birdies"`
	Eagles  int     `json:"eagles"`
}

type playerSeriesDTO struct {
	PlayerID int64            `json:"player_id"`
	Player   string           `json:"player"`
	Points   []seriesPointDTO `json:"points"`
}

type scoresViewDTO struct {
	Rows     []flatRowDTO       `json:"rows"`
	Averages []playerAverageDTO `json:"averages"`
	Series   []playerSeriesDTO  `json:"series"`
}

type ranksDTO struct {
	Average    int `json:"average"`
	BestRound  int `json:"best_round"`
	WorstRound int `json:"worst_round"`
	AvgBest6   int `json:"avg_best_6"`
	AvgWorst6  int `json:"avg_worst_6"`
}

type tiersDTO struct {
	Average    string `json:"average,omitempty"`
	BestRound  string `json:"best_round,omitempty"`
	WorstRound string `json:"worst_round,omitempty"`
	AvgBest6   string `json:"avg_best_6,omitempty"`
	AvgWorst6  string `json:"avg_worst_6,omitempty"`
}

type summaryRowDTO struct {
	PlayerID     int64    `json:"player_id"`
	Player       string   `json:"player"`
	RoundsPlayed int      `json:"rounds_played"`
	TimesPlayed  int      `json:"times_played"`
	LastScore    int      `json:"last_score"`
	Trend        string   `json:"trend"`
	Average      float64  `json:"average"`
	BestRound    int      `json:"best_round"`
	WorstRound   int      `json:"worst_round"`
	AvgBest6     float64  `json:"avg_best_6"`
	AvgWorst6    float64  `json:"avg_worst_6"`
	TotalBirdies int      `json:"total_birdies"`
	TotalEagles  int      `json:"total_eagles"`
	TotalHats    int      `json:"total_hats"`
	Ranks        ranksDTO `json:"ranks"`
	Tiers        tiersDTO `json:"tiers"`
}

type hatHolderDTO struct {
	PlayerID  int64  `json:"player_id"`
	Player    string `json:"player"`
	RoundID   int64  `json:"round_id"`
	RoundDate string `json:"round_date"`
}

type summaryDTO struct {
	Cutoff            string          `json:"cutoff,omitempty"`
	MinRounds         int             `json:"min_rounds"`
	Direction         string          `json:"direction"`
	CountNullAsPlayed bool            `json:"count_null_as_played"`
	Players           []summaryRowDTO `json:"players"`
	HatHolder         *hatHolderDTO   `json:"hat_holder"`
	Message           string          `json:"message,omitempty"`
}

type dayColumnDTO struct {
	PlayerID int64  `json:"player_id"`
	Player   string `json:"player"`
}

type dayCellDTO struct {
	PlayerID int64 `json:"player_id"`
	Played   bool  `json:"played"`
	Score    *int  `json:"score"`
	Hat      bool  `json:"hat"`
}

type dayRowDTO struct {
	RoundID int64        `json:"round_id"`
	Date    string       `json:"date"`
	Course  *string      `json:"course"`
	Cells   []dayCellDTO `json:"cells"`
}

type dayTableDTO struct {
	Columns []dayColumnDTO `json:"columns"`
	Rows    []dayRowDTO    `json:"rows"`
}

type roundFormDTO struct {
	Players []playerDTO `json:"players"`
	Courses []courseDTO `json:"courses"`
}

type editRoundDTO struct {
	Rounds []roundDTO     `json:"rounds"`
	Sheet  *roundSheetDTO `json:"sheet,omitempty"`
}

type menuViewDTO struct {
	Command     string         `json:"command"`
	Scores      *scoresViewDTO `json:"scores,omitempty"`
	Summary     *summaryDTO    `json:"summary,omitempty"`
	ScoresByDay *dayTableDTO   `json:"scores_by_day,omitempty"`
	RoundForm   *roundFormDTO  `json:"round_form,omitempty"`
	EditRound   *editRoundDTO  `json:"edit_round,omitempty"`
	Players     []playerDTO    `json:"players,omitempty"`
	Courses     []courseDTO    `json:"courses,omitempty"`
}

func sessionToDTO(s session.Session) sessionDTO {
	out := sessionDTO{
		UserID:       s.UserID,
		Email:        s.Email,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	if !s.ExpiresAt.IsZero() {
		out.ExpiresAt = s.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return out
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{ID: p.ID, Name: p.Name, FullName: p.FullName, ImageURL: p.ImageURL}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func courseToDTO(c course.Course) courseDTO {
	return courseDTO{ID: c.ID, Name: c.Name}
}

func coursesToDTO(items []course.Course) []courseDTO {
	out := make([]courseDTO, 0, len(items))
	for _, c := range items {
		out = append(out, courseToDTO(c))
	}
	return out
}

func roundToDTO(r round.Round) roundDTO {
	return roundDTO{ID: r.ID, Date: formatDate(r.Date), CourseID: optionalID(r.CourseID)}
}

func roundsToDTO(items []round.Round) []roundDTO {
	out := make([]roundDTO, 0, len(items))
	for _, r := range items {
		out = append(out, roundToDTO(r))
	}
	return out
}

func scoreToDTO(s score.Score) scoreDTO {
	return scoreDTO{
		ID:       s.ID,
		RoundID:  s.RoundID,
		PlayerID: optionalID(s.PlayerID),
		Score:    s.Score,
		Birdies:  s.Birdies,
		Eagles:   s.Eagles,
		Hat:      s.Hat,
	}
}

func scoresToDTO(items []score.Score) []scoreDTO {
	out := make([]scoreDTO, 0, len(items))
	for _, s := range items {
		out = append(out, scoreToDTO(s))
	}
	return out
}

func recordedRoundToDTO(v usecase.RecordedRound) recordedRoundDTO {
	return recordedRoundDTO{Round: roundToDTO(v.Round), Scores: scoresToDTO(v.Scores)}
}

func roundSheetToDTO(v usecase.RoundSheet) roundSheetDTO {
	out := roundSheetDTO{
		Round: roundToDTO(v.Round),
		Lines: make([]roundSheetLineDTO, 0, len(v.Lines)),
	}
	if v.Course != nil {
		c := courseToDTO(*v.Course)
		out.Course = &c
	}
	for _, line := range v.Lines {
		item := roundSheetLineDTO{Player: playerToDTO(line.Player)}
		if line.Score != nil {
			s := scoreToDTO(*line.Score)
			item.Score = &s
		}
		out.Lines = append(out.Lines, item)
	}
	if len(v.Unattributed) > 0 {
		out.Unattributed = scoresToDTO(v.Unattributed)
	}
	return out
}

func scoresViewToDTO(v usecase.ScoresView) scoresViewDTO {
	out := scoresViewDTO{
		Rows:     make([]flatRowDTO, 0, len(v.Rows)),
		Averages: make([]playerAverageDTO, 0, len(v.Averages)),
		Series:   make([]playerSeriesDTO, 0, len(v.Series)),
	}
	for _, row := range v.Rows {
		item := flatRowDTO{
			RoundID:  row.RoundID,
			Course:   row.Course,
			CourseID: row.CourseID,
			PlayerID: row.PlayerID,
			Player:   row.Player,
			Score:    row.Score,
			Birdies:  row.Birdies,
			Eagles:   row.Eagles,
			Hat:      row.Hat,
		}
		if row.RoundDate != nil {
			date := formatDate(*row.RoundDate)
			item.RoundDate = &date
		}
		out.Rows = append(out.Rows, item)
	}
	for _, avg := range v.Averages {
		out.Averages = append(out.Averages, playerAverageDTO{
			PlayerID: avg.PlayerID,
			Player:   avg.Player,
			Average:  round2(avg.Average),
			Rounds:   avg.Rounds,
		})
	}
	for _, series := range v.Series {
		item := playerSeriesDTO{
			PlayerID: series.PlayerID,
			Player:   series.Player,
			Points:   make([]seriesPointDTO, 0, len(series.Points)),
		}
		for _, p := range series.Points {
			item.Points = append(item.Points, seriesPointDTO{
				RoundID: p.RoundID,
				Date:    formatDate(p.Date),
				Course:  p.Course,
				Score:   p.Score,
				Birdies: p.Birdies,
				Eagles:  p.Eagles,
			})
		}
		out.Series = append(out.Series, item)
	}
	return out
}

func summaryToDTO(v usecase.SummaryReport) summaryDTO {
	out := summaryDTO{
		MinRounds:         v.Options.MinRounds,
		Direction:         string(v.Options.Direction),
		CountNullAsPlayed: v.Options.CountNullAsPlayed,
		Players:           make([]summaryRowDTO, 0, len(v.Players)),
		Message:           v.Message,
	}
	if !v.Options.Cutoff.IsZero() {
		out.Cutoff = formatDate(v.Options.Cutoff)
	}
	for _, p := range v.Players {
		out.Players = append(out.Players, summaryRowDTO{
			PlayerID:     p.PlayerID,
			Player:       p.Player,
			RoundsPlayed: p.RoundsPlayed,
			TimesPlayed:  p.TimesPlayed,
			LastScore:    p.LastScore,
			Trend:        string(p.Trend),
			Average:      round2(p.Average),
			BestRound:    p.BestRound,
			WorstRound:   p.WorstRound,
			AvgBest6:     round2(p.AvgBest6),
			AvgWorst6:    round2(p.AvgWorst6),
			TotalBirdies: p.TotalBirdies,
			TotalEagles:  p.TotalEagles,
			TotalHats:    p.TotalHats,
			Ranks: ranksDTO{
				Average:    p.Ranks.Average,
				BestRound:  p.Ranks.BestRound,
				WorstRound: p.Ranks.WorstRound,
				AvgBest6:   p.Ranks.AvgBest6,
				AvgWorst6:  p.Ranks.AvgWorst6,
			},
			Tiers: tiersDTO{
				Average:    summary.Tier(p.Ranks.Average),
				BestRound:  summary.Tier(p.Ranks.BestRound),
				WorstRound: summary.Tier(p.Ranks.WorstRound),
				AvgBest6:   summary.Tier(p.Ranks.AvgBest6),
				AvgWorst6:  summary.Tier(p.Ranks.AvgWorst6),
			},
		})
	}
	if v.HatHolder != nil {
		out.HatHolder = &hatHolderDTO{
			PlayerID:  v.HatHolder.PlayerID,
			Player:    v.HatHolder.Player,
			RoundID:   v.HatHolder.RoundID,
			RoundDate: formatDate(v.HatHolder.RoundDate),
		}
	}
	return out
}

func dayTableToDTO(v summary.DayTable) dayTableDTO {
	out := dayTableDTO{
		Columns: make([]dayColumnDTO, 0, len(v.Columns)),
		Rows:    make([]dayRowDTO, 0, len(v.Rows)),
	}
	for _, col := range v.Columns {
		out.Columns = append(out.Columns, dayColumnDTO{PlayerID: col.PlayerID, Player: col.Player})
	}
	for _, row := range v.Rows {
		item := dayRowDTO{
			RoundID: row.RoundID,
			Date:    formatDate(row.Date),
			Course:  row.Course,
			Cells:   make([]dayCellDTO, 0, len(v.Columns)),
		}
		for _, col := range v.Columns {
			value, played := row.Scores[col.PlayerID]
			item.Cells = append(item.Cells, dayCellDTO{
				PlayerID: col.PlayerID,
				Played:   played,
				Score:    value,
				Hat:      row.HatPlayerID != 0 && row.HatPlayerID == col.PlayerID,
			})
		}
		out.Rows = append(out.Rows, item)
	}
	return out
}

func menuViewToDTO(v usecase.MenuView) menuViewDTO {
	out := menuViewDTO{Command: string(v.Command)}
	if v.Scores != nil {
		scores := scoresViewToDTO(*v.Scores)
		out.Scores = &scores
	}
	if v.Summary != nil {
		report := summaryToDTO(*v.Summary)
		out.Summary = &report
	}
	if v.ScoresByDay != nil {
		table := dayTableToDTO(*v.ScoresByDay)
		out.ScoresByDay = &table
	}
	if v.RoundForm != nil {
		out.RoundForm = &roundFormDTO{
			Players: playersToDTO(v.RoundForm.Players),
			Courses: coursesToDTO(v.RoundForm.Courses),
		}
	}
	if v.EditRound != nil {
		edit := &editRoundDTO{Rounds: roundsToDTO(v.EditRound.Rounds)}
		if v.EditRound.Sheet != nil {
			sheet := roundSheetToDTO(*v.EditRound.Sheet)
			edit.Sheet = &sheet
		}
		out.EditRound = edit
	}
	if v.Command == usecase.CommandManagePlayers {
		out.Players = playersToDTO(v.Players)
	}
	if v.Command == usecase.CommandManageCourses {
		out.Courses = coursesToDTO(v.Courses)
	}
	return out
}

func optionalID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(round.DateLayout)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
