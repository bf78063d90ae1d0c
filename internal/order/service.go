package order

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/MikeMC777/confeitaria/internal/apperr"
	"github.com/MikeMC777/confeitaria/internal/metrics"
)

// Messages returned to the bakery front-end.
const (
	MsgCreated    = "Encomenda criada com sucesso!"
	MsgUpdated    = "Encomenda atualizada com sucesso!"
	MsgDeleted    = "Encomenda deletada com sucesso!"
	MsgNotFound   = "Encomenda não encontrada!"
	MsgIncomplete = "Dados incompletos para cadastro!"
	MsgEmptyField = "Cliente e bolo não podem ficar vazios!"
	MsgNullField  = "Campos da encomenda não podem ser nulos!"
)

const entity = "order"

type Service struct {
	repo    Repository
	log     *log.Entry
	metrics *metrics.Metrics
}

// NewService wires the order store. m may be nil.
func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		log:     log.WithField("component", "order"),
		metrics: m,
	}
}

// Create validates the four required fields and inserts a new order.
func (s *Service) Create(ctx context.Context, in CreateOrderRequest) (*Order, error) {
	// A zero price counts as missing, so free orders cannot be registered.
	if in.Client == "" || in.Cake == "" || in.Price == nil || *in.Price == 0 || in.Date == "" {
		return nil, s.observe("create", apperr.Validation(MsgIncomplete))
	}
	d, err := ParseDate(in.Date)
	if err != nil {
		return nil, s.observe("create", apperr.ValidationCause(err))
	}

	o := &Order{Client: in.Client, Cake: in.Cake, Date: d, Price: *in.Price}
	if err := s.repo.Create(ctx, o); err != nil {
		s.log.WithError(err).Error("insert order")
		return nil, s.observe("create", apperr.Storage(err))
	}
	s.log.WithField("id", o.ID).Info("order created")
	return o, s.observe("create", nil)
}

// List returns every order in table scan order.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("list orders")
		return nil, s.observe("list", apperr.Storage(err))
	}
	return out, s.observe("list", nil)
}

// Update overwrites only the fields present in the request.
func (s *Service) Update(ctx context.Context, id int64, in UpdateOrderRequest) error {
	err := s.repo.Update(ctx, id, func(o *Order) error {
		for _, key := range []string{"cliente", "bolo", "preco", "data"} {
			if in.IsNull(key) {
				return apperr.Validation(MsgNullField)
			}
		}
		if in.Client != nil {
			if *in.Client == "" {
				return apperr.Validation(MsgEmptyField)
			}
			o.Client = *in.Client
		}
		if in.Cake != nil {
			if *in.Cake == "" {
				return apperr.Validation(MsgEmptyField)
			}
			o.Cake = *in.Cake
		}
		if in.Price != nil {
			o.Price = *in.Price
		}
		if in.Date != nil {
			d, err := ParseDate(*in.Date)
			if err != nil {
				return apperr.ValidationCause(err)
			}
			o.Date = d
		}
		return nil
	})
	switch {
	case errors.Is(err, ErrNotFound):
		return s.observe("update", apperr.NotFound(MsgNotFound))
	case err != nil:
		if apperr.KindOf(err) == apperr.KindUnknown {
			s.log.WithError(err).WithField("id", id).Error("update order")
		}
		return s.observe("update", apperr.Storage(err))
	}
	s.log.WithField("id", id).Info("order updated")
	return s.observe("update", nil)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("delete order")
		return s.observe("delete", apperr.Storage(err))
	}
	if !ok {
		return s.observe("delete", apperr.NotFound(MsgNotFound))
	}
	s.log.WithField("id", id).Info("order deleted")
	return s.observe("delete", nil)
}

func (s *Service) observe(op string, err error) error {
	s.metrics.ObserveStoreOp(entity, op, err)
	return err
}
