package db

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/util"
	"github.com/pkg/errors"
)

type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
	now    func() time.Time
}

func NewDynamoStore(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table, now: time.Now}
}

// OpenDynamo connects to endpoint (usually DynamoDB Local) and creates
// the table when it doesn't exist yet.
func OpenDynamo(ctx context.Context, endpoint string, region string, table string) (*DynamoStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating DynamoDB session")
	}
	store := NewDynamoStore(dynamodb.New(sess), table)
	if err := store.EnsureTable(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func isAWSCode(err error, code string) bool {
	var aerr awserr.Error
	return errors.As(err, &aerr) && aerr.Code() == code
}

func (s *DynamoStore) EnsureTable(ctx context.Context) error {
	_, err := s.client.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err == nil {
		return nil
	}
	if !isAWSCode(err, dynamodb.ErrCodeResourceNotFoundException) {
		return errors.Wrapf(err, "describing table %s", s.table)
	}

	_, err = s.client.CreateTableWithContext(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.table),
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
		},
		KeySchema: []*dynamodb.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: aws.String(dynamodb.KeyTypeHash)},
		},
		BillingMode: aws.String(dynamodb.BillingModePayPerRequest),
	})
	return errors.Wrapf(err, "creating table %s", s.table)
}

func (s *DynamoStore) Close() error {
	return nil
}

func songKey(id string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(id)},
	}
}

func (s *DynamoStore) List(ctx context.Context, query string) ([]model.Song, error) {
	songs := make([]model.Song, 0)
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	for {
		out, err := s.client.ScanWithContext(ctx, input)
		if err != nil {
			return nil, errors.Wrap(err, "scanning songs")
		}
		var page []model.Song
		if err := dynamodbattribute.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, errors.Wrap(err, "decoding songs")
		}
		for _, song := range page {
			if query == "" || util.ContainsFold(song.Title, query) {
				songs = append(songs, song)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sortNewestFirst(songs)
	return songs, nil
}

func (s *DynamoStore) Get(ctx context.Context, id string) (model.Song, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       songKey(id),
	})
	if err != nil {
		return model.Song{}, errors.Wrapf(err, "getting song %s", id)
	}
	if out.Item == nil {
		return model.Song{}, notFound(id)
	}
	var song model.Song
	if err := dynamodbattribute.UnmarshalMap(out.Item, &song); err != nil {
		return model.Song{}, errors.Wrapf(err, "decoding song %s", id)
	}
	return song, nil
}

func (s *DynamoStore) Create(ctx context.Context, title string, chords string) (model.Song, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return model.Song{}, err
	}
	song := newSong(title, chords, s.now())
	item, err := dynamodbattribute.MarshalMap(song)
	if err != nil {
		return model.Song{}, errors.Wrap(err, "encoding song")
	}
	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return model.Song{}, errors.Wrap(err, "putting song")
	}
	return song, nil
}

func (s *DynamoStore) Update(ctx context.Context, id string, title string, chords string) (model.Song, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return model.Song{}, err
	}
	out, err := s.client.UpdateItemWithContext(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.table),
		Key:                 songKey(id),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		UpdateExpression:    aws.String("SET Title = :title, Chords = :chords"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":title":  {S: aws.String(title)},
			":chords": {S: aws.String(chords)},
		},
		ReturnValues: aws.String(dynamodb.ReturnValueAllNew),
	})
	if isAWSCode(err, dynamodb.ErrCodeConditionalCheckFailedException) {
		return model.Song{}, notFound(id)
	}
	if err != nil {
		return model.Song{}, errors.Wrapf(err, "updating song %s", id)
	}
	var song model.Song
	if err := dynamodbattribute.UnmarshalMap(out.Attributes, &song); err != nil {
		return model.Song{}, errors.Wrapf(err, "decoding song %s", id)
	}
	return song, nil
}

func (s *DynamoStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.table),
		Key:                 songKey(id),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if isAWSCode(err, dynamodb.ErrCodeConditionalCheckFailedException) {
		return notFound(id)
	}
	return errors.Wrapf(err, "deleting song %s", id)
}
