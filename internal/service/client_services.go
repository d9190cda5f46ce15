package service

import (
	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/internal/store"
)

type ClientServices struct {
	Codec             RecordCodec
	AuthService       ClientAuthService
	KeyService        ClientKeyService
	CredentialService ClientCredentialService
	NoteService       ClientNoteService
	CategoryService   ClientCategoryService
	SharingService    ClientSharingService
	ReauthMonitor     *ReauthMonitor
	Session           *LocalSession
}

// ClientServicesConfig carries the tunables of the service layer.
type ClientServicesConfig struct {
	KDFIterations  int
	MonitorOptions []MonitorOption
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	primitives crypto.Primitives,
	custodian session.KeyCustodian,
	cfg ClientServicesConfig,
	log *logger.Logger,
) *ClientServices {
	localSession := NewLocalSession(custodian, storages.Session, serverAdapter)
	monitor := NewReauthMonitor(custodian, localSession, log, cfg.MonitorOptions...)
	codec := NewRecordCodec(primitives, custodian, log)

	return &ClientServices{
		Codec:             codec,
		AuthService:       NewClientAuthService(serverAdapter, primitives, custodian, storages.Session, monitor, cfg.KDFIterations, log),
		KeyService:        NewClientKeyService(serverAdapter, primitives, custodian, storages.Session, cfg.KDFIterations, log),
		CredentialService: NewClientCredentialService(serverAdapter, codec, log),
		NoteService:       NewClientNoteService(serverAdapter, codec, log),
		CategoryService:   NewClientCategoryService(serverAdapter, log),
		SharingService:    NewClientSharingService(serverAdapter, primitives, custodian, codec, log),
		ReauthMonitor:     monitor,
		Session:           localSession,
	}
}
