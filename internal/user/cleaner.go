package user

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const cleanupSchedule = "@hourly"

// Cleaner drops stored refresh tokens whose expiry has passed so stale
// sessions do not accumulate on user documents.
type Cleaner interface {
	Start()
	Stop()
}

type cleaner struct {
	userRepository Repository
	cron           *cron.Cron
	log            *zap.SugaredLogger
}

func NewCleaner(userRepository Repository, log *zap.SugaredLogger) (Cleaner, error) {
	c := &cleaner{
		userRepository: userRepository,
		cron:           cron.New(),
		log:            log,
	}

	_, err := c.cron.AddFunc(cleanupSchedule, c.run)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *cleaner) Start() {
	c.cron.Start()
}

func (c *cleaner) Stop() {
	c.cron.Stop()
}

func (c *cleaner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cleared, err := c.userRepository.ClearExpiredRefreshTokens(ctx, time.Now().UTC().Unix())
	if err != nil {
		c.log.Errorw(
			"error occurred while clear expired refresh tokens",
			zap.Error(err),
		)
		return
	}

	if cleared > 0 {
		c.log.Infow(
			"expired refresh tokens cleared",
			zap.Int64("count", cleared),
		)
	}
}
