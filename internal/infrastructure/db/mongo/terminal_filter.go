package mongo

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// specsToFilter translates filter specs into a single query document. Specs
// are combined with $and; no specs means "everything".
func specsToFilter(specs []domain.TerminalSpec) (bson.M, error) {
	if len(specs) == 0 {
		return bson.M{}, nil
	}

	clauses := make(bson.A, 0, len(specs))
	for _, s := range specs {
		clause, err := specToClause(s)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	if len(clauses) == 1 {
		return clauses[0].(bson.M), nil
	}
	return bson.M{"$and": clauses}, nil
}

func specToClause(s domain.TerminalSpec) (bson.M, error) {
	switch spec := s.(type) {
	case domain.SearchSpec:
		pattern := primitiveRegex(spec.Term)
		return bson.M{"$or": bson.A{
			bson.M{"service_name": pattern},
			bson.M{"shop_id": pattern},
		}}, nil
	case domain.ModelSpec:
		return bson.M{"tpe_model": string(spec.Model)}, nil
	case domain.ConnectionSpec:
		switch spec.Type {
		case domain.ConnectionEthernet:
			return bson.M{"connection_ethernet": true}, nil
		case domain.Connection4G5G:
			return bson.M{"connection_4g5g": true}, nil
		}
		return nil, fmt.Errorf("unsupported connection type %q", spec.Type)
	case domain.BackofficeSpec:
		return bson.M{"backoffice_active": true}, nil
	}
	return nil, fmt.Errorf("unsupported terminal spec %T", s)
}

// primitiveRegex builds a case-insensitive substring match for term, with
// regex metacharacters escaped.
func primitiveRegex(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}
