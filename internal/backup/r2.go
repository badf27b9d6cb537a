package backup

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"akshaya-backend/internal/config"
	"akshaya-backend/internal/services"
	"akshaya-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const backupInterval = 1 * time.Hour

// Scheduler uploads the daily tally sheet CSV to Cloudflare R2 on a
// fixed interval. Each run snapshots today's sheet and, on the first
// run after midnight, yesterday's final sheet.
type Scheduler struct {
	cfg      *config.Config
	reports  *services.ReportService
	ticker   *time.Ticker
	stopChan chan bool

	lastRunDate string
}

func NewScheduler(cfg *config.Config, reports *services.ReportService) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		reports: reports,
	}
}

// Start launches the backup loop. The first backup runs immediately.
func (s *Scheduler) Start() {
	if s.ticker != nil {
		return
	}

	s.ticker = time.NewTicker(backupInterval)
	s.stopChan = make(chan bool)

	go func() {
		log.Printf("[R2 Backup] Scheduler started (interval: %v)", backupInterval)
		s.runBackup()

		for {
			select {
			case <-s.ticker.C:
				s.runBackup()
			case <-s.stopChan:
				log.Println("[R2 Backup] Scheduler stopped")
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.stopChan <- true
		s.ticker = nil
	}
}

func (s *Scheduler) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := s.newClient(ctx)
	if err != nil {
		log.Printf("[R2 Backup] Failed to configure R2 client: %v", err)
		return
	}

	today := timeutil.Now()
	if err := s.uploadDay(ctx, client, today); err != nil {
		log.Printf("[R2 Backup] Failed to upload today's sheet: %v", err)
		return
	}

	// After midnight the previous day's sheet is final. Upload it once
	// so the snapshot covers entries made late in the evening.
	todayStr := today.Format(timeutil.DateLayout)
	if s.lastRunDate != "" && s.lastRunDate != todayStr {
		yesterday := today.AddDate(0, 0, -1)
		if err := s.uploadDay(ctx, client, yesterday); err != nil {
			log.Printf("[R2 Backup] Failed to upload yesterday's sheet: %v", err)
		}
	}
	s.lastRunDate = todayStr

	log.Printf("[R2 Backup] Backup completed for %s", todayStr)
}

func (s *Scheduler) newClient(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Backup.R2AccessKey,
			s.cfg.Backup.R2SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Backup.R2Region),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.Backup.R2Endpoint)
	})
	return client, nil
}

func (s *Scheduler) uploadDay(ctx context.Context, client *s3.Client, date time.Time) error {
	data, err := s.reports.GenerateDailyCSV(ctx, date)
	if err != nil {
		return fmt.Errorf("generate csv: %w", err)
	}

	key := fmt.Sprintf("backups/daily/tally-%s.csv", date.Format(timeutil.DateLayout))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Backup.R2BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}
