// internal/service/mock_gen.go
package service

//go:generate mockgen -source=./identity.go -destination=../mocks/mock_legacy_session_store.go -package=mocks LegacySessionStoreIface
