package store

import (
	"context"
	"errors"
	"strings"

	"github.com/authpix/apiserver/config"
	"github.com/authpix/apiserver/types"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoUserRepository persists user records in a DynamoDB table keyed by
// email. Attribute names follow the original Users table layout; the
// stringly-typed item encoding stays behind attributevalue marshalling and
// never leaks into callers.
type DynamoUserRepository struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoUserRepository constructs a DynamoDB-backed repository from config.
func NewDynamoUserRepository(ctx context.Context, cfg config.DynamoConfig) (*DynamoUserRepository, error) {
	if strings.TrimSpace(cfg.Table) == "" {
		return nil, errors.New("dynamodb table is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &DynamoUserRepository{client: client, table: cfg.Table}, nil
}

// Create writes the record unconditionally. A pre-existing record with the
// same email is overwritten; last write wins.
func (r *DynamoUserRepository) Create(ctx context.Context, user types.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return err
}

// GetByEmail performs a point lookup. Absence is reported as ErrNotFound.
func (r *DynamoUserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       emailKey(email),
	})
	if err != nil {
		return types.User{}, err
	}
	if len(out.Item) == 0 {
		return types.User{}, ErrNotFound
	}

	var user types.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateProfileImage updates the profile_image attribute in place, leaving
// all other attributes untouched. DynamoDB's upsert semantics apply when the
// record does not exist; that case is not surfaced as an error.
func (r *DynamoUserRepository) UpdateProfileImage(ctx context.Context, email, imageURL string) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              emailKey(email),
		UpdateExpression: aws.String("SET profile_image = :newImage"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":newImage": &ddbtypes.AttributeValueMemberS{Value: imageURL},
		},
	})
	return err
}

func emailKey(email string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"email": &ddbtypes.AttributeValueMemberS{Value: email},
	}
}
