package interaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lattice-home/lattice-go/pkg/log"
	"github.com/lattice-home/lattice-go/pkg/model"
	"github.com/lattice-home/lattice-go/pkg/wire"
)

// ErrDuplicateHandler indicates a handler is already registered for the path.
var ErrDuplicateHandler = errors.New("handler already registered")

// pathKey addresses one cluster instance.
type pathKey struct {
	endpoint model.EndpointID
	cluster  model.ClusterID
}

// Server routes read requests to registered cluster handlers.
type Server struct {
	mu sync.RWMutex

	node      *model.Node
	handlers  map[pathKey]model.Handler
	notifiers []notifierRef

	logger  log.Logger
	session string
}

// notifierRef pairs a change-notifying handler with its path.
type notifierRef struct {
	key      pathKey
	notifier model.ChangeNotifier
}

// NewServer creates a read-dispatch server for the given node.
// A nil logger disables protocol logging.
func NewServer(node *model.Node, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Server{
		node:     node,
		handlers: make(map[pathKey]model.Handler),
		logger:   logger,
		session:  uuid.NewString(),
	}
}

// Session returns the server's session id, used to correlate log events.
func (s *Server) Session() string {
	return s.session
}

// Register adds a handler for the (endpoint, cluster) path. Handlers that
// implement model.ChangeNotifier are also polled by CollectChanges.
func (s *Server) Register(endpointID model.EndpointID, clusterID model.ClusterID, h model.Handler) error {
	if _, ok := s.node.Endpoint(endpointID); !ok {
		return fmt.Errorf("%w: %d", model.ErrEndpointNotFound, endpointID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := pathKey{endpoint: endpointID, cluster: clusterID}
	if _, exists := s.handlers[key]; exists {
		return fmt.Errorf("%w: endpoint %d cluster %#04x", ErrDuplicateHandler, endpointID, clusterID)
	}
	s.handlers[key] = h

	if n, ok := h.(model.ChangeNotifier); ok {
		s.notifiers = append(s.notifiers, notifierRef{key: key, notifier: n})
	}
	return nil
}

// HandleRead processes an incoming read request and returns a response.
// A success response without a report frame means the requester's data
// version was current and nothing was encoded.
func (s *Server) HandleRead(ctx context.Context, req *wire.ReadRequest) *wire.ReadResponse {
	if err := req.Validate(); err != nil {
		return s.fail(req, wire.StatusInvalidRequest, err)
	}

	s.logger.Log(log.Event{
		Timestamp:   time.Now(),
		Session:     s.session,
		Kind:        log.KindRead,
		EndpointID:  req.EndpointID,
		ClusterID:   req.ClusterID,
		AttributeID: req.AttributeID,
	})

	endpointID := model.EndpointID(req.EndpointID)
	if _, ok := s.node.Endpoint(endpointID); !ok {
		return s.fail(req, wire.StatusUnsupportedEndpoint, model.ErrEndpointNotFound)
	}

	s.mu.RLock()
	handler, ok := s.handlers[pathKey{endpoint: endpointID, cluster: model.ClusterID(req.ClusterID)}]
	s.mu.RUnlock()
	if !ok {
		return s.fail(req, wire.StatusUnsupportedCluster, fmt.Errorf("no handler for cluster %#04x", req.ClusterID))
	}

	details := &model.AttrDetails{
		Node:       s.node,
		EndpointID: endpointID,
		AttrID:     req.AttributeID,
	}
	encoder := wire.NewAttrDataEncoder(req.EndpointID, req.ClusterID, req.AttributeID, req.DataVersion)

	if err := handler.Read(details, encoder); err != nil {
		return s.fail(req, statusFor(err), err)
	}

	report, ok := encoder.Report()
	if !ok {
		// Version-gated skip: success with zero writes.
		s.logger.Log(log.Event{
			Timestamp:   time.Now(),
			Session:     s.session,
			Kind:        log.KindSkip,
			EndpointID:  req.EndpointID,
			ClusterID:   req.ClusterID,
			AttributeID: req.AttributeID,
			Status:      wire.StatusSuccess.String(),
		})
		return &wire.ReadResponse{MessageID: req.MessageID, Status: wire.StatusSuccess}
	}

	s.logger.Log(log.Event{
		Timestamp:   time.Now(),
		Session:     s.session,
		Kind:        log.KindReport,
		EndpointID:  req.EndpointID,
		ClusterID:   req.ClusterID,
		AttributeID: req.AttributeID,
		DataVersion: report.DataVersion,
		Size:        len(report.Value),
		Status:      wire.StatusSuccess.String(),
	})
	return &wire.ReadResponse{MessageID: req.MessageID, Status: wire.StatusSuccess, Report: report}
}

// statusFor translates handler error kinds into protocol status codes.
func statusFor(err error) wire.Status {
	switch {
	case errors.Is(err, model.ErrUnsupportedAttribute):
		return wire.StatusUnsupportedAttribute
	case errors.Is(err, wire.ErrWriterOverflow):
		return wire.StatusResourceExhausted
	default:
		return wire.StatusFailure
	}
}

func (s *Server) fail(req *wire.ReadRequest, status wire.Status, err error) *wire.ReadResponse {
	s.logger.Log(log.Event{
		Timestamp:   time.Now(),
		Session:     s.session,
		Kind:        log.KindError,
		EndpointID:  req.EndpointID,
		ClusterID:   req.ClusterID,
		AttributeID: req.AttributeID,
		Status:      status.String(),
		Error:       err.Error(),
	})
	return &wire.ReadResponse{MessageID: req.MessageID, Status: status}
}

// Change records a consumed change signal for one cluster instance.
type Change struct {
	EndpointID  model.EndpointID
	ClusterID   model.ClusterID
	DataVersion uint32
}

// versioned is implemented by handlers exposing their current data version.
type versioned interface {
	DataVersion() uint32
}

// CollectChanges polls registered change notifiers and consumes pending
// change signals. Each burst of changes on a cluster yields exactly one
// record; clusters without a pending signal yield none.
func (s *Server) CollectChanges() []Change {
	s.mu.RLock()
	notifiers := make([]notifierRef, len(s.notifiers))
	copy(notifiers, s.notifiers)
	s.mu.RUnlock()

	var changes []Change
	for _, ref := range notifiers {
		if !ref.notifier.ConsumeChange() {
			continue
		}
		ch := Change{EndpointID: ref.key.endpoint, ClusterID: ref.key.cluster}
		if v, ok := ref.notifier.(versioned); ok {
			ch.DataVersion = v.DataVersion()
		}
		s.logger.Log(log.Event{
			Timestamp:   time.Now(),
			Session:     s.session,
			Kind:        log.KindChange,
			EndpointID:  uint16(ch.EndpointID),
			ClusterID:   uint32(ch.ClusterID),
			DataVersion: ch.DataVersion,
		})
		changes = append(changes, ch)
	}
	return changes
}
