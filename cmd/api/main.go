package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/megamind1212/notesmate-api/internal/config"
	"github.com/megamind1212/notesmate-api/internal/logging"
	"github.com/megamind1212/notesmate-api/internal/repository/minio"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
	"github.com/megamind1212/notesmate-api/internal/repository/postgres"
	redisstore "github.com/megamind1212/notesmate-api/internal/repository/redis"
	"github.com/megamind1212/notesmate-api/internal/service"
	"github.com/megamind1212/notesmate-api/internal/transport/mail"
	"github.com/megamind1212/notesmate-api/internal/util"

	transporthttp "github.com/megamind1212/notesmate-api/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		lw, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Fatalf("logstash writer: %v", err)
		}
		defer lw.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, lw))
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	var otpStore ports.OTPStore = postgres.NewOTPStore(db)
	if cfg.OTPStore == "redis" {
		rs := redisstore.NewOTPStore(cfg.RedisAddr, cfg.RedisPassword)
		if err := rs.Ping(ctx); err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		otpStore = rs
	}

	otpTTL, err := time.ParseDuration(cfg.OTPTTL)
	if err != nil {
		otpTTL = 5 * time.Minute
	}
	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	mailer := mail.NewOTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, from)
	var sender service.OTPSender
	if mailer.Configured() {
		sender = mailer
	} else {
		log.Println("SMTP not configured, OTPs will only appear in the server log")
	}

	var storage ports.ObjectStorage
	if cfg.MinIOEndpoint != "" {
		client, err := minio.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatalf("connect minio: %v", err)
		}
		s := minio.NewStorage(client, cfg.MinIOPublicURL, cfg.MinIOUseSSL)
		if err := s.EnsureBucket(ctx, cfg.MinIOBucket); err != nil {
			log.Printf("ensure bucket %s: %v, audio archiving disabled", cfg.MinIOBucket, err)
		} else {
			storage = s
		}
	}

	directoryRepo := postgres.NewDirectoryRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	noteRepo := postgres.NewNoteRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, sessionTTL)

	otpSvc := service.NewOTPService(otpStore, directoryRepo, sender, otpTTL, cfg.OTPDigits)
	directorySvc := service.NewDirectoryService(directoryRepo)
	clientSvc := service.NewClientService(clientRepo, directoryRepo)
	noteSvc := service.NewNoteService(noteRepo, clientRepo, storage, cfg.MinIOBucket)
	sessionSvc := service.NewSessionService(sessionRepo, directoryRepo, jwtManager)
	streamSvc := service.NewStreamService(cfg.DeepgramAPIKey, cfg.DeepgramModel)

	e := transporthttp.NewRouter(cfg.AllowOrigins)
	transporthttp.RegisterOTP(e, otpSvc, sessionSvc)
	transporthttp.RegisterDirectory(e, directorySvc, clientSvc)
	transporthttp.RegisterNotes(e, noteSvc)
	transporthttp.RegisterStream(e, streamSvc)
	transporthttp.RegisterProfile(e, sessionSvc)
	transporthttp.RegisterSwagger(e)

	e.Server.ReadTimeout = 30 * time.Second
	e.Server.WriteTimeout = 60 * time.Second
	e.Server.IdleTimeout = 120 * time.Second

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
