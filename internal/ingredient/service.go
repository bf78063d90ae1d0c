package ingredient

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/MikeMC777/confeitaria/internal/apperr"
	"github.com/MikeMC777/confeitaria/internal/metrics"
)

const (
	MsgCreated      = "Ingrediente cadastrado com sucesso!"
	MsgUpdated      = "Ingrediente atualizado com sucesso!"
	MsgDeleted      = "Ingrediente deletado com sucesso!"
	MsgNotFound     = "Ingrediente não encontrado!"
	MsgNameRequired = "Nome do ingrediente é obrigatório!"
)

const entity = "ingredient"

type Service struct {
	repo    Repository
	log     *log.Entry
	metrics *metrics.Metrics
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		log:     log.WithField("component", "ingredient"),
		metrics: m,
	}
}

func (s *Service) Create(ctx context.Context, req CreateIngredientRequest) (*Ingredient, error) {
	if req.ProductName == "" {
		return nil, s.observe("create", apperr.Validation(MsgNameRequired))
	}
	in := &Ingredient{ProductName: req.ProductName, Base: req.Base, Filling: req.Filling}
	if err := s.repo.Create(ctx, in); err != nil {
		s.log.WithError(err).Error("insert ingredient")
		return nil, s.observe("create", apperr.Storage(err))
	}
	s.log.WithField("id", in.ID).Info("ingredient created")
	return in, s.observe("create", nil)
}

func (s *Service) List(ctx context.Context) ([]Ingredient, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("list ingredients")
		return nil, s.observe("list", apperr.Storage(err))
	}
	return out, s.observe("list", nil)
}

// Update merges the supplied fields over the stored ingredient.
func (s *Service) Update(ctx context.Context, id int64, req UpdateIngredientRequest) error {
	err := s.repo.Update(ctx, id, func(in *Ingredient) error {
		if req.IsNull("nome_produto") {
			return apperr.Validation(MsgNameRequired)
		}
		if req.ProductName != nil {
			if *req.ProductName == "" {
				return apperr.Validation(MsgNameRequired)
			}
			in.ProductName = *req.ProductName
		}
		if req.Base != nil || req.IsNull("base") {
			in.Base = req.Base
		}
		if req.Filling != nil || req.IsNull("recheio") {
			in.Filling = req.Filling
		}
		return nil
	})
	switch {
	case errors.Is(err, ErrNotFound):
		return s.observe("update", apperr.NotFound(MsgNotFound))
	case err != nil:
		if apperr.KindOf(err) == apperr.KindUnknown {
			s.log.WithError(err).WithField("id", id).Error("update ingredient")
		}
		return s.observe("update", apperr.Storage(err))
	}
	s.log.WithField("id", id).Info("ingredient updated")
	return s.observe("update", nil)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("delete ingredient")
		return s.observe("delete", apperr.Storage(err))
	}
	if !ok {
		return s.observe("delete", apperr.NotFound(MsgNotFound))
	}
	s.log.WithField("id", id).Info("ingredient deleted")
	return s.observe("delete", nil)
}

func (s *Service) observe(op string, err error) error {
	s.metrics.ObserveStoreOp(entity, op, err)
	return err
}
