package repository

import (
	"context"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const accountsByIDIndex = "id-index"

type accountItem struct {
	Email         string `dynamodbav:"email"`
	ID            string `dynamodbav:"id"`
	PasswordHash  string `dynamodbav:"password_hash"`
	DisplayName   string `dynamodbav:"display_name"`
	EmailVerified bool   `dynamodbav:"email_verified"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// AccountDynamoRepository persists accounts in DynamoDB.
//
// Table requirements:
//   - PK: email (string), so the conditional put enforces uniqueness
//   - GSI id-index: id (HASH), projection ALL
type AccountDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb DynamoAPI, tableName string) *AccountDynamoRepository {
	return &AccountDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	a.Email = entities.NormalizeEmail(a.Email)
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{"#email": "email"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Account{}, interfaces.ErrAccountAlreadyExists
		}
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("email", entities.NormalizeEmail(email)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	return unmarshalAccount(out.Item)
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(accountsByIDIndex),
		KeyConditionExpression:    aws.String("#id = :id"),
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":id": str(id)},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Items) == 0 {
		return entities.Account{}, nil
	}
	return unmarshalAccount(out.Items[0])
}

func (r *AccountDynamoRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.ID == "" {
		return nil
	}

	_, err = updateItem(ctx, r.ddb, r.tableName, stringKey("email", a.Email),
		"attribute_exists(#email)", map[string]string{"#email": "email"},
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #password_hash = :password_hash, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":password_hash": str(passwordHash),
				":updated_at":    str(now),
			}
			names := map[string]string{
				"#password_hash": "password_hash",
				"#updated_at":    "updated_at",
			}
			return expr, vals, names
		},
	)
	return err
}

func unmarshalAccount(item map[string]types.AttributeValue) (entities.Account, error) {
	if len(item) == 0 {
		return entities.Account{}, nil
	}
	var it accountItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Account{}, err
	}
	return entities.Account{
		ID:            it.ID,
		Email:         it.Email,
		PasswordHash:  it.PasswordHash,
		DisplayName:   it.DisplayName,
		EmailVerified: it.EmailVerified,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		Email:         a.Email,
		ID:            a.ID,
		PasswordHash:  a.PasswordHash,
		DisplayName:   a.DisplayName,
		EmailVerified: a.EmailVerified,
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}
