package service

import (
	"errors"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
)

// fetchOrFail выполняет fetch и превращает domain.ErrRecordNotFound в *domain.NotFoundError
// с названием сущности и id. Репозитории не видят мягко удаленные строки, поэтому они тоже дают NotFound.
func fetchOrFail[T any](entity domain.Entity, id int64, fetch func() (T, error)) (T, error) {
	rec, err := fetch()
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			var zero T
			return zero, domain.NewNotFoundError(entity, id)
		}
		return rec, err
	}
	return rec, nil
}

// mutateOrFail то же, что fetchOrFail, для операций без результата.
func mutateOrFail(entity domain.Entity, id int64, mutate func() error) error {
	_, err := fetchOrFail(entity, id, func() (struct{}, error) {
		return struct{}{}, mutate()
	})
	return err
}

func repoFrom[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name))
}

func repoOf[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	return uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
}
