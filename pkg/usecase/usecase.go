package usecase

import (
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model/config"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
	"github.com/umlindi-lab/wardrisk/pkg/service/geo"
	"github.com/umlindi-lab/wardrisk/pkg/service/notify"
)

type UseCases struct {
	repo     interfaces.Repository
	catalog  *config.Catalog
	store    *export.Store
	notifier *notify.Service
	wards    *geo.Resolver

	Session *SessionUseCase
	Auth    *AuthUseCase
	Admin   *AdminUseCase
}

type Option func(*UseCases)

// WithNotify enables submission notifications
func WithNotify(svc *notify.Service) Option {
	return func(uc *UseCases) {
		uc.notifier = svc
	}
}

// WithWards enables map-based ward resolution
func WithWards(resolver *geo.Resolver) Option {
	return func(uc *UseCases) {
		uc.wards = resolver
	}
}

// WithAuth sets the login gate secrets. An empty access secret disables
// the gate entirely.
func WithAuth(auth *AuthUseCase) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

func New(repo interfaces.Repository, catalog *config.Catalog, store *export.Store, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		catalog: catalog,
		store:   store,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.Auth == nil {
		uc.Auth = NewAuthUseCase(repo, "", "")
	}
	uc.Session = NewSessionUseCase(repo, catalog, store, uc.notifier, uc.wards)
	uc.Admin = NewAdminUseCase(repo, store)

	return uc
}

// Catalog returns the loaded question catalog
func (uc *UseCases) Catalog() *config.Catalog {
	return uc.catalog
}
