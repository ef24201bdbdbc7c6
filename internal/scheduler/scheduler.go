package scheduler

import (
	"context"
	"time"

	"github.com/quizdesk/backoffice/config"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// Scheduler runs the midnight generation jobs: one new daily challenge from
// the full question pool, and one fresh mock exam per subject.
//
// Both jobs are best-effort. A failed run is logged and dropped; a run
// missed while the process was down is simply skipped, there is no
// backfill. The next midnight tick starts from scratch.
type Scheduler struct {
	cron             *cron.Cron
	challengeService service.ChallengeService
	mockExamService  service.MockExamService
	cfg              *config.Config
}

func NewScheduler(cfg *config.Config, challengeService service.ChallengeService, mockExamService service.MockExamService) (*Scheduler, error) {
	loc := time.Local
	if cfg.Scheduler.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(cfg.Scheduler.Timezone)
		if err != nil {
			return nil, err
		}
	}

	return &Scheduler{
		cron:             cron.New(cron.WithLocation(loc)),
		challengeService: challengeService,
		mockExamService:  mockExamService,
		cfg:              cfg,
	}, nil
}

func (s *Scheduler) register() error {
	if _, err := s.cron.AddFunc("0 0 * * *", s.runDailyChallenge); err != nil {
		return err
	}
	if s.cfg.Scheduler.MockExamSweepQuestions > 0 {
		if _, err := s.cron.AddFunc("0 0 * * *", s.runMockExamSweep); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runDailyChallenge() {
	log.Info().Msg("Scheduler: generating daily challenge")
	challenge, err := s.challengeService.GenerateDaily(s.cfg.Scheduler.DailyChallengeQuestions)
	if err != nil {
		log.Error().Err(err).Msg("Scheduler: daily challenge generation failed")
		return
	}
	log.Info().Str("title", challenge.Title).Int("questions", len(challenge.QuestionIDs)).
		Msg("Scheduler: daily challenge created")
}

func (s *Scheduler) runMockExamSweep() {
	log.Info().Msg("Scheduler: running mock exam sweep")
	if err := s.mockExamService.GenerateForAllSubjects(s.cfg.Scheduler.MockExamSweepQuestions); err != nil {
		log.Error().Err(err).Msg("Scheduler: mock exam sweep finished with errors")
		return
	}
	log.Info().Msg("Scheduler: mock exam sweep completed")
}

// Register wires the scheduler into the fx lifecycle.
func Register(lc fx.Lifecycle, s *Scheduler) error {
	if err := s.register(); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.cron.Start()
			log.Info().Int("jobs", len(s.cron.Entries())).Msg("Scheduler started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := s.cron.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			log.Info().Msg("Scheduler stopped")
			return nil
		},
	})
	return nil
}
