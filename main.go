package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/api"
	"DriverDesk/internal/config"
	"DriverDesk/internal/handlers"
	"DriverDesk/internal/kiosk"
	"DriverDesk/internal/logger"
	"DriverDesk/internal/session"
	"DriverDesk/internal/storage"
	"DriverDesk/internal/telegram_api"
)

func main() {
	// --- Блок инициализации ---
	if err := godotenv.Load(); err != nil {
		log.Warn("Предупреждение: не удалось загрузить файл .env. Переменные окружения должны быть установлены иным способом.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось загрузить конфигурацию: %v", err)
	}

	logCloser := logger.Setup(cfg.LogFile, cfg.LogLevel)
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось открыть хранилище '%s': %v", cfg.StorageDriver, err)
	}
	repo := storage.NewRepository(backend)
	defer func() {
		if err := repo.Close(); err != nil {
			log.Errorf("Ошибка закрытия хранилища: %v", err)
		}
	}()

	// Уведомления супервайзеру необязательны.
	var bot *telegram_api.BotClient
	var notifier *telegram_api.Notifier
	if cfg.NotificationsEnabled() {
		bot, err = telegram_api.NewClient(cfg.TelegramToken, cfg.AppEnv == "dev")
		if err != nil {
			log.Errorf("Telegram бот не инициализирован, уведомления отключены: %v", err)
			bot = nil
		} else {
			notifier = telegram_api.NewNotifier(bot, cfg.SupervisorChatID, cfg.DefaultLocale)
		}
	}

	opts := kiosk.Options{Location: cfg.Location}
	apiDeps := api.ApiDependencies{Config: cfg}
	if notifier != nil {
		opts.Notifier = notifier
		apiDeps.Digest = notifier
	}
	svc := kiosk.New(ctx, repo, opts)
	apiDeps.Service = svc
	apiDeps.Drafts = session.NewSessionManager(nil)

	// Команды супервайзера в боте
	if bot != nil {
		botHandler := handlers.NewBotHandler(handlers.HandlerDependencies{
			Config:  cfg,
			Sender:  bot,
			Service: svc,
		})
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates := bot.GetUpdatesChan(u)
		go func() {
			for update := range updates {
				if update.Message != nil {
					go botHandler.HandleMessage(update)
				}
			}
		}()
		defer bot.StopReceivingUpdates()
	}

	// --- Настройка роутера и Middleware ---
	router := chi.NewRouter()

	// ГЛОБАЛЬНЫЕ MIDDLEWARES ДОЛЖНЫ ИДТИ ПЕРЕД api.SetupRoutes
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(api.RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", api.AdminPasswordHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	api.SetupRoutes(router, apiDeps)

	// Статика интерфейса киоска, если каталог есть.
	workDir, _ := os.Getwd()
	webDir := filepath.Join(workDir, "webapp")
	if st, err := os.Stat(webDir); err == nil && st.IsDir() {
		router.Get("/", http.RedirectHandler("/webapp/", http.StatusMovedPermanently).ServeHTTP)
		FileServer(router, "/webapp", http.Dir(webDir))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infof("Запуск HTTP-сервера киоска на порту %s (хранилище: %s)", cfg.Port, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("КРИТИЧЕСКАЯ ОШИБКА: не удалось запустить HTTP-сервер: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Получен сигнал остановки, завершаем работу...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Ошибка при остановке HTTP-сервера: %v", err)
	}
	log.Info("Сервер остановлен.")
}

// FileServer для обслуживания статичных файлов
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer не поддерживает шаблоны URL")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}
