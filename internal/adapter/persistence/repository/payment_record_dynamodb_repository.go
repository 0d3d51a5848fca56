package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type paymentRecordItem struct {
	ID        string `dynamodbav:"id"`
	Kind      string `dynamodbav:"kind"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	Version   int64  `dynamodbav:"version"`
	Payload   string `dynamodbav:"payload"`
}

// DynamoRecordRepository persists one payment kind per table.
//
// Table requirements:
//   - PK: id (string)
//
// The full record is kept as JSON in payload; status and created_at are
// copied out for ad-hoc queries. version guards read-modify-write cycles.
type DynamoRecordRepository[T entities.PaymentAttempt] struct {
	ddb       DynamoDBAPI
	tableName string
}

var (
	_ interfaces.IPixPaymentRepository    = (*DynamoRecordRepository[entities.PixPayment])(nil)
	_ interfaces.ICardPaymentRepository   = (*DynamoRecordRepository[entities.CardPayment])(nil)
	_ interfaces.IBoletoPaymentRepository = (*DynamoRecordRepository[entities.BoletoPayment])(nil)
)

// NewDynamoRecordRepository uses tableName, falling back to the kind namespace.
func NewDynamoRecordRepository[T entities.PaymentAttempt](ddb DynamoDBAPI, tableName string) *DynamoRecordRepository[T] {
	if tableName == "" {
		tableName = namespaceOf[T]()
	}
	return &DynamoRecordRepository[T]{ddb: ddb, tableName: tableName}
}

func NewPixPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *DynamoRecordRepository[entities.PixPayment] {
	return NewDynamoRecordRepository[entities.PixPayment](ddb, tableName)
}

func NewCardPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *DynamoRecordRepository[entities.CardPayment] {
	return NewDynamoRecordRepository[entities.CardPayment](ddb, tableName)
}

func NewBoletoPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *DynamoRecordRepository[entities.BoletoPayment] {
	return NewDynamoRecordRepository[entities.BoletoPayment](ddb, tableName)
}

func (r *DynamoRecordRepository[T]) Save(ctx context.Context, p T) error {
	b, err := encodeRecord(p)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.AttemptID()},
		},
		UpdateExpression: aws.String("SET #kind = :kind, #status = :status, #created_at = :created_at, #payload = :payload ADD #version :one"),
		ExpressionAttributeNames: map[string]string{
			"#kind":       "kind",
			"#status":     "status",
			"#created_at": "created_at",
			"#payload":    "payload",
			"#version":    "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind":       &types.AttributeValueMemberS{Value: string(p.AttemptKind())},
			":status":     &types.AttributeValueMemberS{Value: p.AttemptStatus()},
			":created_at": &types.AttributeValueMemberS{Value: p.AttemptCreatedAt().UTC().Format(time.RFC3339Nano)},
			":payload":    &types.AttributeValueMemberS{Value: string(b)},
			":one":        &types.AttributeValueMemberN{Value: "1"},
		},
	})
	return err
}

func (r *DynamoRecordRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	it, found, err := r.getItem(ctx, id)
	if err != nil || !found {
		return zero, err
	}
	return decodeRecord[T]([]byte(it.Payload))
}

func (r *DynamoRecordRepository[T]) getItem(ctx context.Context, id string) (paymentRecordItem, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return paymentRecordItem{}, false, err
	}
	if len(out.Item) == 0 {
		return paymentRecordItem{}, false, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return paymentRecordItem{}, false, err
	}
	return it, true, nil
}

func (r *DynamoRecordRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it paymentRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := decodeRecord[T]([]byte(it.Payload))
			if err != nil {
				return nil, err
			}
			items = append(items, p)
		}
	}
	sortNewestFirst(items)
	return items, nil
}

// Update reads the item, applies mutate and writes it back only if version is
// unchanged, retrying on conflicts.
func (r *DynamoRecordRepository[T]) Update(ctx context.Context, id string, mutate func(T) (T, bool)) (T, bool, error) {
	var zero T
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		it, found, err := r.getItem(ctx, id)
		if err != nil || !found {
			return zero, false, err
		}
		cur, err := decodeRecord[T]([]byte(it.Payload))
		if err != nil {
			return zero, false, err
		}

		next, changed := mutate(cur)
		if !changed {
			return cur, false, nil
		}
		b, err := encodeRecord(next)
		if err != nil {
			return zero, false, err
		}

		av, err := attributevalue.MarshalMap(paymentRecordItem{
			ID:        next.AttemptID(),
			Kind:      string(next.AttemptKind()),
			Status:    next.AttemptStatus(),
			CreatedAt: next.AttemptCreatedAt().UTC().Format(time.RFC3339Nano),
			Version:   it.Version + 1,
			Payload:   string(b),
		})
		if err != nil {
			return zero, false, err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#version = :version"),
			ExpressionAttributeNames: map[string]string{
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(it.Version, 10)},
			},
		})
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			continue
		}
		if err != nil {
			return zero, false, err
		}
		return next, true, nil
	}
	return zero, false, ErrUpdateConflict
}
