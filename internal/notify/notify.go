package notify

import (
	"net/http"
	"sync"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// maxPending caps the queue of an owner who never reads it.
const maxPending = 50

// Notice is a transient, user-facing message, the server-side stand-in for
// a toast.
type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Recorder queues notices per owner until the client drains them.
type Recorder struct {
	mu      sync.Mutex
	pending map[string][]Notice
	now     func() time.Time
	logger  *zap.Logger
}

func NewRecorder(logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		pending: make(map[string][]Notice),
		now:     time.Now,
		logger:  logger.Named("notify"),
	}
}

func (r *Recorder) Success(owner, msg string) { r.Notify(owner, LevelSuccess, msg) }

func (r *Recorder) Error(owner, msg string) { r.Notify(owner, LevelError, msg) }

func (r *Recorder) Notify(owner, level, msg string) {
	n := Notice{Level: level, Message: msg, At: r.now().UTC()}

	r.mu.Lock()
	q := append(r.pending[owner], n)
	if len(q) > maxPending {
		q = q[len(q)-maxPending:]
	}
	r.pending[owner] = q
	r.mu.Unlock()

	r.logger.Debug("notice", zap.String("owner", owner), zap.String("level", level), zap.String("message", msg))
}

// Drain returns the owner's notices oldest first and forgets them.
func (r *Recorder) Drain(owner string) []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := r.pending[owner]
	delete(r.pending, owner)
	if q == nil {
		return []Notice{}
	}
	return q
}

// Handler
// GET /notifications
func (r *Recorder) Handler(c *gin.Context) {
	response.Success(c, http.StatusOK, "", r.Drain(middleware.OwnerID(c)))
}

func RegisterRoutes(rg *gin.RouterGroup, r *Recorder) {
	rg.GET("/notifications", r.Handler)
}
