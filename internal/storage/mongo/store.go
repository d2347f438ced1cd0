// Package mongo provides the MongoDB store backing.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pibuilder/pibuilder/pkg/domain"
)

const (
	workflowsCollection      = "workflows"
	executionsCollection     = "executions"
	toolsCollection          = "tools"
	toolExecutionsCollection = "tool_executions"
	usersCollection          = "users"
)

type Store struct {
	database *mongo.Database
}

// NewStore connects to MongoDB and returns a store over the given database.
// The caller owns the client lifecycle through Close.
func NewStore(ctx context.Context, uri, databaseName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	store := &Store{database: client.Database(databaseName)}
	store.ensureIndexes(ctx)

	return store, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.database.Client().Disconnect(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	uniqueID := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	indexesByCollection := map[string][]mongo.IndexModel{
		workflowsCollection: {
			uniqueID,
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		executionsCollection: {
			uniqueID,
			{Keys: bson.D{{Key: "workflow_id", Value: 1}, {Key: "started_at", Value: 1}}},
		},
		toolsCollection: {
			uniqueID,
			{Keys: bson.D{{Key: "creator_id", Value: 1}, {Key: "created_at", Value: 1}}},
			{Keys: bson.D{{Key: "published", Value: 1}}},
		},
		toolExecutionsCollection: {
			uniqueID,
			{Keys: bson.D{{Key: "tool_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		usersCollection: {uniqueID},
	}

	for collection, indexes := range indexesByCollection {
		if _, err := s.database.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			fmt.Printf("Failed to create indexes for %s: %v\n", collection, err)
		}
	}
}

func (s *Store) CreateWorkflow(ctx context.Context, workflow domain.Workflow) error {
	_, err := s.database.Collection(workflowsCollection).InsertOne(ctx, workflow)
	if err != nil {
		return fmt.Errorf("failed to insert workflow: %w", err)
	}

	return nil
}

func (s *Store) GetWorkflow(ctx context.Context, id string) (domain.Workflow, error) {
	var workflow domain.Workflow

	err := s.database.Collection(workflowsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&workflow)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Workflow{}, domain.ErrWorkflowNotFound
	}
	if err != nil {
		return domain.Workflow{}, fmt.Errorf("failed to get workflow: %w", err)
	}

	return workflow, nil
}

func (s *Store) ListWorkflows(ctx context.Context) ([]domain.Workflow, error) {
	return s.findWorkflows(ctx, bson.M{})
}

func (s *Store) ListWorkflowsByUser(ctx context.Context, userID string) ([]domain.Workflow, error) {
	return s.findWorkflows(ctx, bson.M{"user_id": userID})
}

func (s *Store) findWorkflows(ctx context.Context, filter bson.M) ([]domain.Workflow, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.database.Collection(workflowsCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find workflows: %w", err)
	}
	defer cursor.Close(ctx)

	workflows := []domain.Workflow{}
	if err := cursor.All(ctx, &workflows); err != nil {
		return nil, fmt.Errorf("failed to decode workflows: %w", err)
	}

	return workflows, nil
}

func (s *Store) UpdateWorkflow(ctx context.Context, workflow domain.Workflow) error {
	result, err := s.database.Collection(workflowsCollection).ReplaceOne(ctx, bson.M{"id": workflow.ID}, workflow)
	if err != nil {
		return fmt.Errorf("failed to update workflow: %w", err)
	}

	if result.MatchedCount == 0 {
		return domain.ErrWorkflowNotFound
	}

	return nil
}

func (s *Store) DeleteWorkflow(ctx context.Context, id string) error {
	result, err := s.database.Collection(workflowsCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete workflow: %w", err)
	}

	if result.DeletedCount == 0 {
		return domain.ErrWorkflowNotFound
	}

	return nil
}

func (s *Store) CreateExecution(ctx context.Context, execution domain.Execution) error {
	_, err := s.database.Collection(executionsCollection).InsertOne(ctx, execution)
	if err != nil {
		return fmt.Errorf("failed to insert execution: %w", err)
	}

	return nil
}

func (s *Store) UpdateExecution(ctx context.Context, execution domain.Execution) error {
	result, err := s.database.Collection(executionsCollection).ReplaceOne(ctx, bson.M{"id": execution.ID}, execution)
	if err != nil {
		return fmt.Errorf("failed to update execution: %w", err)
	}

	if result.MatchedCount == 0 {
		return domain.ErrExecutionNotFound
	}

	return nil
}

func (s *Store) GetExecution(ctx context.Context, id string) (domain.Execution, error) {
	var execution domain.Execution

	err := s.database.Collection(executionsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&execution)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Execution{}, domain.ErrExecutionNotFound
	}
	if err != nil {
		return domain.Execution{}, fmt.Errorf("failed to get execution: %w", err)
	}

	return execution, nil
}

func (s *Store) ListExecutionsByWorkflow(ctx context.Context, workflowID string) ([]domain.Execution, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "started_at", Value: 1}})

	cursor, err := s.database.Collection(executionsCollection).Find(ctx, bson.M{"workflow_id": workflowID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find executions: %w", err)
	}
	defer cursor.Close(ctx)

	executions := []domain.Execution{}
	if err := cursor.All(ctx, &executions); err != nil {
		return nil, fmt.Errorf("failed to decode executions: %w", err)
	}

	return executions, nil
}

func (s *Store) DeleteExecutionsByWorkflow(ctx context.Context, workflowID string) error {
	_, err := s.database.Collection(executionsCollection).DeleteMany(ctx, bson.M{"workflow_id": workflowID})
	if err != nil {
		return fmt.Errorf("failed to delete executions: %w", err)
	}

	return nil
}

func (s *Store) CreateTool(ctx context.Context, tool domain.Tool) error {
	_, err := s.database.Collection(toolsCollection).InsertOne(ctx, tool)
	if err != nil {
		return fmt.Errorf("failed to insert tool: %w", err)
	}

	return nil
}

func (s *Store) GetTool(ctx context.Context, id string) (domain.Tool, error) {
	var tool domain.Tool

	err := s.database.Collection(toolsCollection).FindOne(ctx, bson.M{"id": id}).Decode(&tool)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Tool{}, domain.ErrToolNotFound
	}
	if err != nil {
		return domain.Tool{}, fmt.Errorf("failed to get tool: %w", err)
	}

	return tool, nil
}

func (s *Store) ListToolsByCreator(ctx context.Context, creatorID string) ([]domain.Tool, error) {
	return s.findTools(ctx, bson.M{"creator_id": creatorID})
}

func (s *Store) ListPublishedTools(ctx context.Context) ([]domain.Tool, error) {
	return s.findTools(ctx, bson.M{"published": true})
}

func (s *Store) findTools(ctx context.Context, filter bson.M) ([]domain.Tool, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.database.Collection(toolsCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find tools: %w", err)
	}
	defer cursor.Close(ctx)

	tools := []domain.Tool{}
	if err := cursor.All(ctx, &tools); err != nil {
		return nil, fmt.Errorf("failed to decode tools: %w", err)
	}

	return tools, nil
}

func (s *Store) UpdateTool(ctx context.Context, tool domain.Tool) error {
	result, err := s.database.Collection(toolsCollection).ReplaceOne(ctx, bson.M{"id": tool.ID}, tool)
	if err != nil {
		return fmt.Errorf("failed to update tool: %w", err)
	}

	if result.MatchedCount == 0 {
		return domain.ErrToolNotFound
	}

	return nil
}

func (s *Store) DeleteTool(ctx context.Context, id string) error {
	result, err := s.database.Collection(toolsCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}

	if result.DeletedCount == 0 {
		return domain.ErrToolNotFound
	}

	return nil
}

func (s *Store) CreateToolExecution(ctx context.Context, execution domain.ToolExecution) error {
	_, err := s.database.Collection(toolExecutionsCollection).InsertOne(ctx, execution)
	if err != nil {
		return fmt.Errorf("failed to insert tool execution: %w", err)
	}

	return nil
}

func (s *Store) ListToolExecutionsByTool(ctx context.Context, toolID string) ([]domain.ToolExecution, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.database.Collection(toolExecutionsCollection).Find(ctx, bson.M{"tool_id": toolID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find tool executions: %w", err)
	}
	defer cursor.Close(ctx)

	executions := []domain.ToolExecution{}
	if err := cursor.All(ctx, &executions); err != nil {
		return nil, fmt.Errorf("failed to decode tool executions: %w", err)
	}

	return executions, nil
}

func (s *Store) DeleteToolExecutionsByTool(ctx context.Context, toolID string) error {
	_, err := s.database.Collection(toolExecutionsCollection).DeleteMany(ctx, bson.M{"tool_id": toolID})
	if err != nil {
		return fmt.Errorf("failed to delete tool executions: %w", err)
	}

	return nil
}

func (s *Store) UpsertUser(ctx context.Context, user domain.User) error {
	update := bson.M{"$set": user}

	_, err := s.database.Collection(usersCollection).UpdateOne(ctx, bson.M{"id": user.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (domain.User, error) {
	var user domain.User

	err := s.database.Collection(usersCollection).FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
