package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobOrdersTableName = "job_orders"

	// Counter items share the job orders table under a reserved key prefix;
	// List filters them out by the JO- id prefix.
	sequenceKeyPrefix = "sequence#"
	jobOrderIDPrefix  = "JO-"
)

type workItemRecord struct {
	Title  string `dynamodbav:"title"`
	Amount int64  `dynamodbav:"amount"`
}

type quantifiedItemRecord struct {
	Qty    int    `dynamodbav:"qty"`
	Name   string `dynamodbav:"name"`
	Amount int64  `dynamodbav:"amount"`
}

type jobOrderItem struct {
	ID       string `dynamodbav:"id"`
	Customer string `dynamodbav:"customer"`
	Address  string `dynamodbav:"address"`
	Make     string `dynamodbav:"make"`
	Plate    string `dynamodbav:"plate"`
	Phone    string `dynamodbav:"phone"`
	Mechanic string `dynamodbav:"mechanic"`
	Status   string `dynamodbav:"status"`
	Remarks  string `dynamodbav:"remarks"`
	Date     string `dynamodbav:"date"`

	WorkRequested []workItemRecord       `dynamodbav:"work_requested"`
	OilsAndFuels  []quantifiedItemRecord `dynamodbav:"oils_and_fuels"`
	Parts         []quantifiedItemRecord `dynamodbav:"parts"`

	LaborTotal int64 `dynamodbav:"labor_total"`
	PartsTotal int64 `dynamodbav:"parts_total"`
	OilTotal   int64 `dynamodbav:"oil_total"`
	Total      int64 `dynamodbav:"total"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobOrderDynamoRepository persists JobOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Amounts are stored as integer centavos; the JO-<year>-<sequence> id is
// issued from an atomic ADD on a per-year counter item in the same table.

type JobOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobOrderRepository = (*JobOrderDynamoRepository)(nil)

func NewJobOrderDynamoRepository(ddb *dynamodb.Client) *JobOrderDynamoRepository {
	return &JobOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_ORDERS_TABLE", defaultJobOrdersTableName),
	}
}

func (r *JobOrderDynamoRepository) Create(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error) {
	av, err := attributevalue.MarshalMap(toJobOrderItem(o))
	if err != nil {
		return entities.JobOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	return o, nil
}

func (r *JobOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobOrder{}, nil
	}

	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func (r *JobOrderDynamoRepository) List(ctx context.Context) ([]entities.JobOrder, error) {
	var orders []entities.JobOrder
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("begins_with(#id, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: jobOrderIDPrefix},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []jobOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromJobOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *JobOrderDynamoRepository) Update(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error) {
	av, err := attributevalue.MarshalMap(toJobOrderItem(o))
	if err != nil {
		return entities.JobOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.JobOrder{}, nil
		}
		return entities.JobOrder{}, err
	}
	return o, nil
}

func (r *JobOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// NextSequence atomically increments and returns the per-year order counter.
func (r *JobOrderDynamoRepository) NextSequence(ctx context.Context, year int) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: sequenceKeyPrefix + strconv.Itoa(year)},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "counter_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["counter_value"]
	if !ok {
		return 0, errors.New("sequence counter missing after update")
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("sequence counter has unexpected type")
	}
	return strconv.Atoi(n.Value)
}

func toJobOrderItem(o entities.JobOrder) jobOrderItem {
	it := jobOrderItem{
		ID:         o.ID,
		Customer:   o.Customer,
		Address:    o.Address,
		Make:       o.Make,
		Plate:      o.Plate,
		Phone:      o.Phone,
		Mechanic:   o.Mechanic,
		Status:     string(o.Status),
		Remarks:    o.Remarks,
		Date:       o.Date,
		LaborTotal: int64(o.LaborTotal),
		PartsTotal: int64(o.PartsTotal),
		OilTotal:   int64(o.OilTotal),
		Total:      int64(o.Total),
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, w := range o.WorkRequested {
		it.WorkRequested = append(it.WorkRequested, workItemRecord{Title: w.Title, Amount: int64(w.Amount)})
	}
	for _, f := range o.OilsAndFuels {
		it.OilsAndFuels = append(it.OilsAndFuels, quantifiedItemRecord{Qty: f.Qty, Name: f.Name, Amount: int64(f.Amount)})
	}
	for _, p := range o.Parts {
		it.Parts = append(it.Parts, quantifiedItemRecord{Qty: p.Qty, Name: p.Name, Amount: int64(p.Amount)})
	}
	return it
}

func fromJobOrderItem(it jobOrderItem) entities.JobOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.JobOrder{
		ID:         it.ID,
		Customer:   it.Customer,
		Address:    it.Address,
		Make:       it.Make,
		Plate:      it.Plate,
		Phone:      it.Phone,
		Mechanic:   it.Mechanic,
		Status:     entities.JobOrderStatus(it.Status),
		Remarks:    it.Remarks,
		Date:       it.Date,
		LaborTotal: entities.Centavos(it.LaborTotal),
		PartsTotal: entities.Centavos(it.PartsTotal),
		OilTotal:   entities.Centavos(it.OilTotal),
		Total:      entities.Centavos(it.Total),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	for _, w := range it.WorkRequested {
		o.WorkRequested = append(o.WorkRequested, entities.WorkItem{Title: w.Title, Amount: entities.Centavos(w.Amount)})
	}
	for _, f := range it.OilsAndFuels {
		o.OilsAndFuels = append(o.OilsAndFuels, entities.FluidItem{Qty: f.Qty, Name: f.Name, Amount: entities.Centavos(f.Amount)})
	}
	for _, p := range it.Parts {
		o.Parts = append(o.Parts, entities.PartItem{Qty: p.Qty, Name: p.Name, Amount: entities.Centavos(p.Amount)})
	}
	return o
}
