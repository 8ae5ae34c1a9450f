package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fiftymais/internal/adapter/persistence/record"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quotesByUserIndex = "user_id-created_at-index"

// quoteItem is record.QuoteRow as a DynamoDB item. JSON columns are kept as
// strings; the legacy flat columns are read back but never written.
type quoteItem struct {
	ID          string  `dynamodbav:"id"`
	UserID      string  `dynamodbav:"user_id"`
	Numero      int     `dynamodbav:"numero"`
	ClienteNome string  `dynamodbav:"cliente_nome"`
	ClienteWpp  string  `dynamodbav:"cliente_wpp"`
	ClienteEnd  string  `dynamodbav:"cliente_end,omitempty"`
	ClienteRef  string  `dynamodbav:"cliente_ref,omitempty"`
	TipoMovel   string  `dynamodbav:"tipo_movel"`
	Validade    string  `dynamodbav:"validade,omitempty"`
	Status      string  `dynamodbav:"status"`
	VTotal      float64 `dynamodbav:"v_total"`
	Medidas     string  `dynamodbav:"medidas,omitempty"`
	Ambientes   string  `dynamodbav:"ambientes,omitempty"`

	Chapa      string `dynamodbav:"chapa,omitempty"`
	Acabamento string `dynamodbav:"acabamento,omitempty"`
	Ferragens  string `dynamodbav:"ferragens,omitempty"`
	Detalhes   string `dynamodbav:"detalhes,omitempty"`
	Inicio     string `dynamodbav:"inicio,omitempty"`
	Entrega    string `dynamodbav:"entrega,omitempty"`
	PrazoObs   string `dynamodbav:"prazo_obs,omitempty"`
	Garantia   string `dynamodbav:"garantia,omitempty"`
	Incluso    string `dynamodbav:"incluso,omitempty"`
	Excluso    string `dynamodbav:"excluso,omitempty"`
	ObsFinal   string `dynamodbav:"obs_final,omitempty"`

	VMat      float64 `dynamodbav:"v_mat,omitempty"`
	VDespesas float64 `dynamodbav:"v_despesas,omitempty"`
	VFerr     float64 `dynamodbav:"v_ferr,omitempty"`
	VOutros   float64 `dynamodbav:"v_outros,omitempty"`
	VMargem   float64 `dynamodbav:"v_margem,omitempty"`

	PgtoFormas   []string `dynamodbav:"pgto_formas,omitempty"`
	PgtoParcelas int      `dynamodbav:"pgto_parcelas,omitempty"`
	PgtoJuros    bool     `dynamodbav:"pgto_juros,omitempty"`
	PgtoPix      string   `dynamodbav:"pgto_pix,omitempty"`
	PgtoPixTipo  string   `dynamodbav:"pgto_pix_tipo,omitempty"`
	PgtoCondicao string   `dynamodbav:"pgto_condicao,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-created_at-index: user_id (HASH), created_at (RANGE), projection ALL
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return r.put(ctx, q, "attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil)
}

// Update replaces the whole item as long as it exists and belongs to q.UserID.
func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	return r.put(ctx, q,
		"attribute_exists(#id) AND #user_id = :user_id",
		map[string]string{"#id": "id", "#user_id": "user_id"},
		map[string]types.AttributeValue{":user_id": str(q.UserID)},
	)
}

func (r *QuoteDynamoRepository) put(
	ctx context.Context,
	q entities.Quote,
	condition string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.Quote, error) {
	row, err := record.Serialize(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(toQuoteItem(row))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return record.Deserialize(row)
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, userID, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	q, err := unmarshalQuote(out.Item)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.UserID != userID {
		return entities.Quote{}, nil
	}
	return q, nil
}

// ListByUser returns the user's quotes, newest first.
func (r *QuoteDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Quote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, r.byUserQuery(userID, types.SelectAllProjectedAttributes))

	quotes := []entities.Quote{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			q, err := unmarshalQuote(item)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, r.byUserQuery(userID, types.SelectCount))

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *QuoteDynamoRepository) byUserQuery(userID string, sel types.Select) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(quotesByUserIndex),
		KeyConditionExpression:    aws.String("#user_id = :user_id"),
		ExpressionAttributeNames:  map[string]string{"#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":user_id": str(userID)},
		ScanIndexForward:          aws.Bool(false),
		Select:                    sel,
	}
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, userID, id string, status entities.QuoteStatus) (entities.Quote, error) {
	attrs, err := updateItem(ctx, r.ddb, r.tableName,
		stringKey("id", id),
		"attribute_exists(#id) AND #user_id = :user_id",
		map[string]string{"#id": "id", "#user_id": "user_id"},
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #status = :status, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":status":     str(string(status)),
				":updated_at": str(now),
				":user_id":    str(userID),
			}
			names := map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		},
	)
	if err != nil || attrs == nil {
		return entities.Quote{}, err
	}
	return unmarshalQuote(attrs)
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #user_id = :user_id"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":user_id": str(userID)},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func unmarshalQuote(item map[string]types.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Quote{}, err
	}
	q, err := record.Deserialize(fromQuoteItem(it))
	if err != nil {
		return entities.Quote{}, fmt.Errorf("quote %s: %w", it.ID, err)
	}
	return q, nil
}

func toQuoteItem(row record.QuoteRow) quoteItem {
	return quoteItem{
		ID:          row.ID,
		UserID:      row.UserID,
		Numero:      row.Numero,
		ClienteNome: row.ClienteNome,
		ClienteWpp:  row.ClienteWpp,
		ClienteEnd:  row.ClienteEnd,
		ClienteRef:  row.ClienteRef,
		TipoMovel:   row.TipoMovel,
		Validade:    row.Validade,
		Status:      row.Status,
		VTotal:      row.VTotal,
		Medidas:     string(row.Medidas),
		Ambientes:   string(row.Ambientes),
		CreatedAt:   formatTime(row.CreatedAt),
		UpdatedAt:   formatTime(row.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) record.QuoteRow {
	return record.QuoteRow{
		ID:           it.ID,
		UserID:       it.UserID,
		Numero:       it.Numero,
		ClienteNome:  it.ClienteNome,
		ClienteWpp:   it.ClienteWpp,
		ClienteEnd:   it.ClienteEnd,
		ClienteRef:   it.ClienteRef,
		TipoMovel:    it.TipoMovel,
		Validade:     it.Validade,
		Status:       it.Status,
		VTotal:       it.VTotal,
		Medidas:      json.RawMessage(it.Medidas),
		Ambientes:    json.RawMessage(it.Ambientes),
		Chapa:        it.Chapa,
		Acabamento:   it.Acabamento,
		Ferragens:    it.Ferragens,
		Detalhes:     it.Detalhes,
		Inicio:       it.Inicio,
		Entrega:      it.Entrega,
		PrazoObs:     it.PrazoObs,
		Garantia:     it.Garantia,
		Incluso:      it.Incluso,
		Excluso:      it.Excluso,
		ObsFinal:     it.ObsFinal,
		VMat:         it.VMat,
		VDespesas:    it.VDespesas,
		VFerr:        it.VFerr,
		VOutros:      it.VOutros,
		VMargem:      it.VMargem,
		PgtoFormas:   it.PgtoFormas,
		PgtoParcelas: it.PgtoParcelas,
		PgtoJuros:    it.PgtoJuros,
		PgtoPix:      it.PgtoPix,
		PgtoPixTipo:  it.PgtoPixTipo,
		PgtoCondicao: it.PgtoCondicao,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
