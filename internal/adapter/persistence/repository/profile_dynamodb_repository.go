package repository

import (
	"context"
	"sort"
	"strings"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const profilesByCustomerIndex = "stripe_customer_id-index"

type profileItem struct {
	ID                    string `dynamodbav:"id"`
	Nome                  string `dynamodbav:"nome"`
	Responsavel           string `dynamodbav:"responsavel"`
	CPF                   string `dynamodbav:"cpf"`
	Wpp                   string `dynamodbav:"wpp"`
	Insta                 string `dynamodbav:"insta"`
	Cidade                string `dynamodbav:"cidade"`
	Especialidade         string `dynamodbav:"especialidade"`
	Endereco              string `dynamodbav:"endereco"`
	Logo                  string `dynamodbav:"logo"`
	Unidade               string `dynamodbav:"unidade"`
	Validade              string `dynamodbav:"validade"`
	PrazoMin              string `dynamodbav:"prazo_min"`
	PrazoMax              string `dynamodbav:"prazo_max"`
	Rodape                string `dynamodbav:"rodape"`
	IsActive              bool   `dynamodbav:"is_active"`
	StripeCustomerID      string `dynamodbav:"stripe_customer_id,omitempty"`
	StripeSubscriptionID  string `dynamodbav:"stripe_subscription_id,omitempty"`
	SubscriptionStatus    string `dynamodbav:"subscription_status,omitempty"`
	SubscriptionUpdatedAt string `dynamodbav:"subscription_updated_at,omitempty"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string), equal to the account id
//   - GSI stripe_customer_id-index: stripe_customer_id (HASH)
//
// Editor fields and subscription fields are written by separate
// UpdateItem calls so neither side can clobber the other.
type ProfileDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoAPI, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}
	return unmarshalProfile(out.Item)
}

func (r *ProfileDynamoRepository) SaveDetails(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	fields := map[string]string{
		"nome":          p.CompanyName,
		"responsavel":   p.OwnerName,
		"cpf":           p.TaxID,
		"wpp":           p.Phone,
		"insta":         p.Instagram,
		"cidade":        p.City,
		"especialidade": p.Specialty,
		"endereco":      p.Address,
		"logo":          p.Logo,
		"unidade":       string(p.Unit),
		"validade":      p.Validity,
		"prazo_min":     p.DeadlineMin,
		"prazo_max":     p.DeadlineMax,
		"rodape":        p.Footer,
	}

	attrs, err := updateItem(ctx, r.ddb, r.tableName, stringKey("id", p.ID), "", nil,
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			fields["updated_at"] = now
			return setExpression(fields)
		},
	)
	if err != nil {
		return entities.Profile{}, err
	}
	return unmarshalProfile(attrs)
}

// UpsertSubscription creates the profile when missing, seeding unidade=cm. An empty customer id
// leaves the stored one untouched.
func (r *ProfileDynamoRepository) UpsertSubscription(ctx context.Context, accountID string, sub entities.Subscription) error {
	_, err := updateItem(ctx, r.ddb, r.tableName, stringKey("id", accountID), "", nil,
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			fields := map[string]string{
				"subscription_status":     sub.Status,
				"subscription_updated_at": formatTime(sub.UpdatedAt),
				"updated_at":              now,
			}
			if sub.CustomerID != "" {
				fields["stripe_customer_id"] = sub.CustomerID
			}
			if sub.SubscriptionID != "" {
				fields["stripe_subscription_id"] = sub.SubscriptionID
			}
			expr, vals, names := setExpression(fields)
			expr += ", #is_active = :is_active"
			vals[":is_active"] = &types.AttributeValueMemberBOOL{Value: sub.Active}
			names["#is_active"] = "is_active"
			expr += ", #unidade = if_not_exists(#unidade, :unidade)"
			vals[":unidade"] = &types.AttributeValueMemberS{Value: string(entities.UnitCentimeters)}
			names["#unidade"] = "unidade"
			return expr, vals, names
		},
	)
	return err
}

func (r *ProfileDynamoRepository) DeactivateByCustomerID(ctx context.Context, customerID string) (int, error) {
	if customerID == "" {
		return 0, nil
	}

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(profilesByCustomerIndex),
		KeyConditionExpression:    aws.String("#cid = :cid"),
		ExpressionAttributeNames:  map[string]string{"#cid": "stripe_customer_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":cid": str(customerID)},
	})

	changed := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return changed, err
		}
		for _, item := range page.Items {
			idAttr, ok := item["id"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			attrs, err := updateItem(ctx, r.ddb, r.tableName, stringKey("id", idAttr.Value),
				"#cid = :cid", map[string]string{"#cid": "stripe_customer_id"},
				func(now string) (string, map[string]types.AttributeValue, map[string]string) {
					expr := "SET #is_active = :false, #status = :inactive, #updated_at = :now"
					vals := map[string]types.AttributeValue{
						":false":    &types.AttributeValueMemberBOOL{Value: false},
						":inactive": str(entities.SubscriptionStatusInactive),
						":now":      str(now),
						":cid":      str(customerID),
					}
					names := map[string]string{
						"#is_active":  "is_active",
						"#status":     "subscription_status",
						"#updated_at": "updated_at",
					}
					return expr, vals, names
				},
			)
			if err != nil {
				return changed, err
			}
			if attrs != nil {
				changed++
			}
		}
	}
	return changed, nil
}

// setExpression builds "SET #a = :a, ..." over string attributes.
func setExpression(fields map[string]string) (string, map[string]types.AttributeValue, map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make(map[string]types.AttributeValue, len(fields))
	names := make(map[string]string, len(fields))
	parts := make([]string, 0, len(fields))
	for _, k := range keys {
		parts = append(parts, "#"+k+" = :"+k)
		names["#"+k] = k
		vals[":"+k] = str(fields[k])
	}
	return "SET " + strings.Join(parts, ", "), vals, names
}

func unmarshalProfile(item map[string]types.AttributeValue) (entities.Profile, error) {
	if len(item) == 0 {
		return entities.Profile{}, nil
	}
	var it profileItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{
		ID:          it.ID,
		CompanyName: it.Nome,
		OwnerName:   it.Responsavel,
		TaxID:       it.CPF,
		Phone:       it.Wpp,
		Instagram:   it.Insta,
		City:        it.Cidade,
		Specialty:   it.Especialidade,
		Address:     it.Endereco,
		Logo:        it.Logo,
		Unit:        entities.MeasurementUnit(it.Unidade),
		Validity:    it.Validade,
		DeadlineMin: it.PrazoMin,
		DeadlineMax: it.PrazoMax,
		Footer:      it.Rodape,
		Subscription: entities.Subscription{
			Active:         it.IsActive,
			CustomerID:     it.StripeCustomerID,
			SubscriptionID: it.StripeSubscriptionID,
			Status:         it.SubscriptionStatus,
			UpdatedAt:      parseTime(it.SubscriptionUpdatedAt),
		},
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
