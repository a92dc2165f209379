package api

import (
	"encoding/json"

	"github.com/fsdevblog/storeledger/internal/domain"
)

// Projection содержит ровно одно из представлений записи: урезанное для user или полное для admin.
type Projection[R, F any] struct {
	Restricted *R
	Full       *F
}

func (p Projection[R, F]) MarshalJSON() ([]byte, error) {
	if p.Full != nil {
		return json.Marshal(p.Full)
	}
	return json.Marshal(p.Restricted)
}

// project выбирает представление записи по роли автора запроса.
func project[T, R, F any](caller domain.Caller, rec *T, restricted func(*T) R, full func(*T) F) Projection[R, F] {
	if caller.IsAdmin() {
		v := full(rec)
		return Projection[R, F]{Full: &v}
	}
	v := restricted(rec)
	return Projection[R, F]{Restricted: &v}
}

// projectAll проецирует список, сохраняя порядок репозитория.
func projectAll[T, R, F any](
	caller domain.Caller,
	recs []T,
	restricted func(*T) R,
	full func(*T) F,
) []Projection[R, F] {
	res := make([]Projection[R, F], 0, len(recs))
	for i := range recs {
		res = append(res, project(caller, &recs[i], restricted, full))
	}
	return res
}
