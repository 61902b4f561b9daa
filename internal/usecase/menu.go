package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-twitchers/internal/domain/course"
	"github.com/riskibarqy/golf-twitchers/internal/domain/player"
	"github.com/riskibarqy/golf-twitchers/internal/domain/round"
	"github.com/riskibarqy/golf-twitchers/internal/domain/summary"
)

type Command string

const (
	CommandViewScores    Command = "view-scores"
	CommandSummary       Command = "summary"
	CommandScoresByDay   Command = "scores-by-day"
	CommandAddRound      Command = "add-round"
	CommandEditRound     Command = "edit-round"
	CommandManagePlayers Command = "manage-players"
	CommandManageCourses Command = "manage-courses"
)

var commands = []Command{
	CommandViewScores,
	CommandSummary,
	CommandScoresByDay,
	CommandAddRound,
	CommandEditRound,
	CommandManagePlayers,
	CommandManageCourses,
}

func Commands() []Command {
	return append([]Command(nil), commands...)
}

// ParseCommand accepts the slug or the menu label ("Scores by Day").
func ParseCommand(v string) (Command, error) {
	slug := strings.ToLower(strings.TrimSpace(v))
	slug = strings.NewReplacer(" ", "-", "_", "-").Replace(slug)
	for _, cmd := range commands {
		if string(cmd) == slug {
			return cmd, nil
		}
	}
	return "", fmt.Errorf("%w: unknown menu command %q", ErrInvalidInput, v)
}

type MenuParams struct {
	PlayerID int64
	RoundID  int64
	Summary  SummaryQuery
}

// MenuView carries the read model of one menu entry; only the field matching
// Command is set.
type MenuView struct {
	Command     Command
	Scores      *ScoresView
	Summary     *SummaryReport
	ScoresByDay *summary.DayTable
	RoundForm   *RoundForm
	EditRound   *EditRoundView
	Players     []player.Player
	Courses     []course.Course
}

// RoundForm lists what a new round card can be filled with.
type RoundForm struct {
	Players []player.Player
	Courses []course.Course
}

type EditRoundView struct {
	Rounds []round.Round
	Sheet  *RoundSheet
}

type MenuService struct {
	players *PlayerService
	courses *CourseService
	rounds  *RoundService
	summary *SummaryService
}

func NewMenuService(players *PlayerService, courses *CourseService, rounds *RoundService, summarySvc *SummaryService) *MenuService {
	return &MenuService{
		players: players,
		courses: courses,
		rounds:  rounds,
		summary: summarySvc,
	}
}

func (s *MenuService) Dispatch(ctx context.Context, cmd Command, params MenuParams) (MenuView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MenuService.Dispatch")
	defer span.End()

	view := MenuView{Command: cmd}
	switch cmd {
	case CommandViewScores:
		scores, err := s.summary.ViewScores(ctx, params.PlayerID)
		if err != nil {
			return MenuView{}, err
		}
		view.Scores = &scores
	case CommandSummary:
		report, err := s.summary.Summary(ctx, params.Summary)
		if err != nil {
			return MenuView{}, err
		}
		view.Summary = &report
	case CommandScoresByDay:
		table, err := s.summary.ScoresByDay(ctx)
		if err != nil {
			return MenuView{}, err
		}
		view.ScoresByDay = &table
	case CommandAddRound:
		players, err := s.players.List(ctx)
		if err != nil {
			return MenuView{}, err
		}
		courses, err := s.courses.List(ctx)
		if err != nil {
			return MenuView{}, err
		}
		view.RoundForm = &RoundForm{Players: players, Courses: courses}
	case CommandEditRound:
		rounds, err := s.rounds.ListRounds(ctx)
		if err != nil {
			return MenuView{}, err
		}
		edit := &EditRoundView{Rounds: rounds}
		if params.RoundID > 0 {
			sheet, err := s.rounds.GetRoundSheet(ctx, params.RoundID)
			if err != nil {
				return MenuView{}, err
			}
			edit.Sheet = &sheet
		}
		view.EditRound = edit
	case CommandManagePlayers:
		players, err := s.players.List(ctx)
		if err != nil {
			return MenuView{}, err
		}
		view.Players = players
	case CommandManageCourses:
		courses, err := s.courses.List(ctx)
		if err != nil {
			return MenuView{}, err
		}
		view.Courses = courses
	default:
		return MenuView{}, fmt.Errorf("%w: unknown menu command %q", ErrInvalidInput, cmd)
	}
	return view, nil
}
