// pkg/di/container.go
package di

import (
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/tszwong/notizen-api/application/editor"
	"github.com/tszwong/notizen-api/application/serviceimpl"
	"github.com/tszwong/notizen-api/application/writequeue"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/infrastructure/adapter"
	"github.com/tszwong/notizen-api/infrastructure/persistence/postgres"
	"github.com/tszwong/notizen-api/infrastructure/persistence/redisstore"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
	"github.com/tszwong/notizen-api/interfaces/websocket"
	"github.com/tszwong/notizen-api/pkg/scheduler"

	"gorm.io/gorm"
)

// Container holds every dependency of the application
type Container struct {
	// Repositories
	UserRepo       repository.UserRepository
	NoteRepo       repository.NoteRepository
	ListRepo       repository.ListRepository
	TagRepo        repository.TagRepository
	StatsRepo      repository.StatsRepository
	ActivityRepo   repository.ActivityRepository
	PomodoroRepo   repository.PomodoroRepository
	AttachmentRepo repository.AttachmentRepository

	// WebSocket components
	WebSocketHub  *websocket.Hub
	WebSocketPort port.WebSocketPort

	// Per-entity write serialization
	WriteQueue *writequeue.Queue

	// Editor session registry
	EditorManager *editor.Manager

	// Services
	StorageService   service.FileStorageService
	UserService      service.UserService
	NoteService      service.NoteService
	ListService      service.ListService
	TagService       service.TagService
	StatsService     service.StatsService
	ActivityService  service.ActivityService
	AIService        service.AIService
	PomodoroService  service.PomodoroService
	IdentityProvider port.IdentityProvider
	PreferenceStore  port.PreferenceStore

	// Handlers
	UserHandler       *handler.UserHandler
	PreferenceHandler *handler.PreferenceHandler
	NoteHandler       *handler.NoteHandler
	ListHandler       *handler.ListHandler
	TagHandler        *handler.TagHandler
	AIHandler         *handler.AIHandler
	ActivityHandler   *handler.ActivityHandler
	StatsHandler      *handler.StatsHandler
	PomodoroHandler   *handler.PomodoroHandler
	FileHandler       *handler.FileHandler

	// Middleware
	AuthMiddleware *middleware.AuthMiddleware

	// Background components
	RedisClient   *redis.Client
	PomodoroTimer *scheduler.PomodoroTimerManager
}

// NewContainer wires the whole dependency graph
func NewContainer(
	db *gorm.DB,
	storageService service.FileStorageService,
	redisClient *redis.Client,
	summarizer port.Summarizer,
	identityProvider port.IdentityProvider,
) (*Container, error) {
	container := &Container{
		StorageService:   storageService,
		RedisClient:      redisClient,
		IdentityProvider: identityProvider,
	}

	// Repositories
	container.UserRepo = postgres.NewUserRepository(db)
	container.NoteRepo = postgres.NewNoteRepository(db)
	container.ListRepo = postgres.NewListRepository(db)
	container.TagRepo = postgres.NewTagRepository(db)
	container.StatsRepo = postgres.NewStatsRepository(db)
	container.ActivityRepo = postgres.NewActivityRepository(db)
	container.PomodoroRepo = postgres.NewPomodoroRepository(db)
	container.AttachmentRepo = postgres.NewAttachmentRepository(db)

	container.PreferenceStore = redisstore.NewPreferenceStore(redisClient)

	// One write lane per entity keeps concurrent mutations ordered
	container.WriteQueue = writequeue.New()

	// WebSocket hub and its port adapter
	container.WebSocketHub = websocket.NewHub()
	container.WebSocketPort = adapter.NewWebSocketAdapter(container.WebSocketHub)

	// Services
	container.UserService = serviceimpl.NewUserService(container.UserRepo)
	container.NoteService = serviceimpl.NewNoteService(container.NoteRepo, container.StatsRepo)
	container.ListService = serviceimpl.NewListService(
		container.ListRepo,
		container.StatsRepo,
		container.WriteQueue,
		container.WebSocketPort,
	)
	container.TagService = serviceimpl.NewTagService(
		container.TagRepo,
		container.ListRepo,
		container.WriteQueue,
	)
	container.StatsService = serviceimpl.NewStatsService(container.StatsRepo)
	container.ActivityService = serviceimpl.NewActivityService(container.ActivityRepo)
	container.AIService = serviceimpl.NewAIService(summarizer)

	pomodoroService := serviceimpl.NewPomodoroService(
		container.PomodoroRepo,
		container.StatsRepo,
		container.WebSocketPort,
	)
	container.PomodoroService = pomodoroService

	// The timer completes sessions through the service, and the service
	// arms timers through the manager
	container.PomodoroTimer = scheduler.NewPomodoroTimerManager(func(sessionID, userID uuid.UUID) {
		if _, err := pomodoroService.CompleteSession(sessionID, userID); err != nil {
			log.Printf("[PomodoroTimer] auto-complete failed for session %s: %v", sessionID, err)
		}
	})
	pomodoroService.SetTimer(container.PomodoroTimer)

	// Editor sessions flush drafts through NoteService
	container.EditorManager = editor.NewManager(
		container.NoteService,
		container.NoteService,
		container.WebSocketPort,
		container.WriteQueue,
		editor.DefaultDebounceDelay,
	)

	// Middleware
	container.AuthMiddleware = middleware.NewAuthMiddleware(identityProvider, container.UserService)

	// Handlers
	container.UserHandler = handler.NewUserHandler(container.UserService, identityProvider)
	container.PreferenceHandler = handler.NewPreferenceHandler(container.PreferenceStore)
	container.NoteHandler = handler.NewNoteHandler(
		container.NoteService,
		container.EditorManager,
		container.WebSocketPort,
		container.PreferenceStore,
		container.ActivityService,
	)
	container.ListHandler = handler.NewListHandler(container.ListService, container.ActivityService)
	container.TagHandler = handler.NewTagHandler(container.TagService)
	container.AIHandler = handler.NewAIHandler(container.AIService, container.EditorManager)
	container.ActivityHandler = handler.NewActivityHandler(container.ActivityService)
	container.StatsHandler = handler.NewStatsHandler(container.StatsService)
	container.PomodoroHandler = handler.NewPomodoroHandler(container.PomodoroService)
	container.FileHandler = handler.NewFileHandler(container.StorageService, container.AttachmentRepo)

	return container, nil
}
