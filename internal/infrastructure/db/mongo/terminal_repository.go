package mongo

import (
	"context"
	"fmt"
	"iter"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

const (
	terminalsCollection = "terminals"
	exportTimeout       = 2 * time.Minute
)

var byCreation = bson.D{{Key: "_id", Value: 1}}

type TerminalRepository struct {
	col *mongo.Collection
}

func NewTerminalRepository(db *mongo.Database) *TerminalRepository {
	return &TerminalRepository{col: db.Collection(terminalsCollection)}
}

var _ ports.TerminalRepository = (*TerminalRepository)(nil)

type mongoTerminal struct {
	ID                 primitive.ObjectID    `bson:"_id,omitempty"`
	ServiceName        string                `bson:"service_name"`
	ShopID             string                `bson:"shop_id"`
	OperatorFirstName  string                `bson:"regisseur_prenom,omitempty"`
	OperatorLastName   string                `bson:"regisseur_nom,omitempty"`
	OperatorPhone      string                `bson:"regisseur_telephone,omitempty"`
	AlternateOperators string                `bson:"regisseurs_suppleants,omitempty"`
	MerchantCards      []domain.MerchantCard `bson:"merchant_cards"`
	Model              string                `bson:"tpe_model,omitempty"`
	UnitCount          int                   `bson:"number_of_tpe"`
	ConnectionEthernet bool                  `bson:"connection_ethernet"`
	Connection4G5G     bool                  `bson:"connection_4g5g"`
	NetworkIPAddress   string                `bson:"network_ip_address,omitempty"`
	NetworkMask        string                `bson:"network_mask,omitempty"`
	NetworkGateway     string                `bson:"network_gateway,omitempty"`
	BackofficeActive   bool                  `bson:"backoffice_active"`
	BackofficeEmail    string                `bson:"backoffice_email,omitempty"`
	CreatedAt          time.Time             `bson:"created_at"`
	UpdatedAt          *time.Time            `bson:"updated_at,omitempty"`
}

func fromDomainTerminal(t *domain.Terminal) mongoTerminal {
	cards := t.MerchantCards
	if cards == nil {
		cards = []domain.MerchantCard{}
	}
	return mongoTerminal{
		ServiceName:        t.ServiceName,
		ShopID:             t.ShopID,
		OperatorFirstName:  t.OperatorFirstName,
		OperatorLastName:   t.OperatorLastName,
		OperatorPhone:      t.OperatorPhone,
		AlternateOperators: t.AlternateOperators,
		MerchantCards:      cards,
		Model:              string(t.Model),
		UnitCount:          t.UnitCount,
		ConnectionEthernet: t.ConnectionEthernet,
		Connection4G5G:     t.Connection4G5G,
		NetworkIPAddress:   t.NetworkIPAddress,
		NetworkMask:        t.NetworkMask,
		NetworkGateway:     t.NetworkGateway,
		BackofficeActive:   t.BackofficeActive,
		BackofficeEmail:    t.BackofficeEmail,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func (mt *mongoTerminal) toDomain() *domain.Terminal {
	return &domain.Terminal{
		ID:                 mt.ID.Hex(),
		ServiceName:        mt.ServiceName,
		ShopID:             mt.ShopID,
		OperatorFirstName:  mt.OperatorFirstName,
		OperatorLastName:   mt.OperatorLastName,
		OperatorPhone:      mt.OperatorPhone,
		AlternateOperators: mt.AlternateOperators,
		MerchantCards:      mt.MerchantCards,
		Model:              domain.TerminalModel(mt.Model),
		UnitCount:          mt.UnitCount,
		ConnectionEthernet: mt.ConnectionEthernet,
		Connection4G5G:     mt.Connection4G5G,
		NetworkIPAddress:   mt.NetworkIPAddress,
		NetworkMask:        mt.NetworkMask,
		NetworkGateway:     mt.NetworkGateway,
		BackofficeActive:   mt.BackofficeActive,
		BackofficeEmail:    mt.BackofficeEmail,
		CreatedAt:          mt.CreatedAt.UTC(),
		UpdatedAt:          utcPtr(mt.UpdatedAt),
	}
}

// patchToSet lists the fields of patch as a $set document.
func patchToSet(p domain.TerminalPatch) bson.M {
	set := bson.M{}
	put := func(key string, present bool, v any) {
		if present {
			set[key] = v
		}
	}
	put("service_name", p.ServiceName != nil, deref(p.ServiceName))
	put("shop_id", p.ShopID != nil, deref(p.ShopID))
	put("regisseur_prenom", p.OperatorFirstName != nil, deref(p.OperatorFirstName))
	put("regisseur_nom", p.OperatorLastName != nil, deref(p.OperatorLastName))
	put("regisseur_telephone", p.OperatorPhone != nil, deref(p.OperatorPhone))
	put("regisseurs_suppleants", p.AlternateOperators != nil, deref(p.AlternateOperators))
	if p.MerchantCards != nil {
		cards := *p.MerchantCards
		if cards == nil {
			cards = []domain.MerchantCard{}
		}
		set["merchant_cards"] = cards
	}
	if p.Model != nil {
		set["tpe_model"] = string(*p.Model)
	}
	if p.UnitCount != nil {
		set["number_of_tpe"] = *p.UnitCount
	}
	if p.ConnectionEthernet != nil {
		set["connection_ethernet"] = *p.ConnectionEthernet
	}
	if p.Connection4G5G != nil {
		set["connection_4g5g"] = *p.Connection4G5G
	}
	put("network_ip_address", p.NetworkIPAddress != nil, deref(p.NetworkIPAddress))
	put("network_mask", p.NetworkMask != nil, deref(p.NetworkMask))
	put("network_gateway", p.NetworkGateway != nil, deref(p.NetworkGateway))
	if p.BackofficeActive != nil {
		set["backoffice_active"] = *p.BackofficeActive
	}
	put("backoffice_email", p.BackofficeEmail != nil, deref(p.BackofficeEmail))
	return set
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *TerminalRepository) FindByID(ctx context.Context, id string) (*domain.Terminal, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrTerminalNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *TerminalRepository) FindByShopID(ctx context.Context, shopID string) (*domain.Terminal, error) {
	return r.findOne(ctx, bson.M{"shop_id": shopID})
}

func (r *TerminalRepository) findOne(ctx context.Context, filter bson.M) (*domain.Terminal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTerminal
	if err := r.col.FindOne(ctx, filter).Decode(&mt); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrTerminalNotFound
		}
		return nil, fmt.Errorf("find terminal: %w", err)
	}
	return mt.toDomain(), nil
}

// List returns a page of terminals matching every spec, plus the total count.
func (r *TerminalRepository) List(ctx context.Context, q ports.ListTerminalsQuery) ([]*domain.Terminal, int64, error) {
	filter, err := specsToFilter(q.Specs)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count terminals: %w", err)
	}
	if int64(q.Offset) >= total {
		return []*domain.Terminal{}, total, nil
	}

	opts := options.Find().
		SetSort(byCreation).
		SetSkip(int64(q.Offset)).
		SetLimit(int64(q.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find terminals: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Terminal, 0, q.Limit)
	for cur.Next(ctx) {
		var mt mongoTerminal
		if err := cur.Decode(&mt); err != nil {
			return nil, 0, fmt.Errorf("decode terminal: %w", err)
		}
		items = append(items, mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("find terminals: %w", err)
	}
	return items, total, nil
}

func (r *TerminalRepository) Count(ctx context.Context, specs ...domain.TerminalSpec) (int64, error) {
	filter, err := specsToFilter(specs)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count terminals: %w", err)
	}
	return n, nil
}

func (r *TerminalRepository) Create(ctx context.Context, t *domain.Terminal) (*domain.Terminal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainTerminal(t)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, terminalWriteError("insert terminal", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *TerminalRepository) Update(ctx context.Context, id string, patch domain.TerminalPatch) (*domain.Terminal, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrTerminalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := patchToSet(patch)
	set["updated_at"] = time.Now().UTC()

	var mt mongoTerminal
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mt)
	if err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrTerminalNotFound
		}
		return nil, terminalWriteError("update terminal", err)
	}
	return mt.toDomain(), nil
}

func (r *TerminalRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete terminal: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// Iterate streams every terminal through a cursor. Breaking out of the loop
// closes the cursor.
func (r *TerminalRepository) Iterate(ctx context.Context) iter.Seq2[*domain.Terminal, error] {
	return func(yield func(*domain.Terminal, error) bool) {
		ctx, cancel := context.WithTimeout(ctx, exportTimeout)
		defer cancel()

		cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(byCreation))
		if err != nil {
			yield(nil, fmt.Errorf("iterate terminals: %w", err))
			return
		}
		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var mt mongoTerminal
			if err := cur.Decode(&mt); err != nil {
				yield(nil, fmt.Errorf("decode terminal: %w", err))
				return
			}
			if !yield(mt.toDomain(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(nil, fmt.Errorf("iterate terminals: %w", err))
		}
	}
}

func terminalWriteError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrShopIDExists
	}
	return fmt.Errorf("%s: %w", op, err)
}
