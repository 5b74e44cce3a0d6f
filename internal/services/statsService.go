package services

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/culinara/recipevault/internal/models"
	"github.com/culinara/recipevault/internal/utils"
)

// Stats summarizes the recipes within the actor's ownership scope.
type Stats struct {
	Total        int64          `json:"total"`
	Featured     int64          `json:"featured"`
	ByCategory   map[string]int `json:"byCategory"`
	ByDifficulty map[string]int `json:"byDifficulty"`
	AvgPrepTime  int            `json:"avgPrepTime"`
	AvgCookTime  int            `json:"avgCookTime"`
}

type groupCount struct {
	ID    string `bson:"_id"`
	Count int    `bson:"count"`
}

type groupAvg struct {
	Avg float64 `bson:"avg"`
}

// ComputeStats runs the six independent aggregate queries concurrently and
// joins the results.
func ComputeStats(ctx context.Context, role models.Role, actorHex string) (Stats, error) {
	actorID, err := primitive.ObjectIDFromHex(actorHex)
	if err != nil {
		return Stats{}, fmt.Errorf("invalid actor id: %w", err)
	}
	scope := scopeFilter(role, actorID)

	featuredScope := bson.M{"isFeatured": true}
	for k, v := range scope {
		featuredScope[k] = v
	}

	results, err := utils.RunParallel(
		func() (interface{}, error) {
			return recipeCollection.CountDocuments(ctx, scope)
		},
		func() (interface{}, error) {
			return recipeCollection.CountDocuments(ctx, featuredScope)
		},
		func() (interface{}, error) {
			return groupBy(ctx, scope, "$category")
		},
		func() (interface{}, error) {
			return groupBy(ctx, scope, "$difficulty")
		},
		func() (interface{}, error) {
			return averageOf(ctx, scope, "$prepTime")
		},
		func() (interface{}, error) {
			return averageOf(ctx, scope, "$cookTime")
		},
	)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to compute stats: %w", err)
	}

	return buildStats(
		results[0].(int64),
		results[1].(int64),
		results[2].([]groupCount),
		results[3].([]groupCount),
		results[4].([]groupAvg),
		results[5].([]groupAvg),
	), nil
}

// buildStats shapes the raw aggregation results. Absent categories and
// difficulties simply do not appear; averages over an empty scope are 0.
func buildStats(total, featured int64, byCategory, byDifficulty []groupCount, prepAvg, cookAvg []groupAvg) Stats {
	stats := Stats{
		Total:        total,
		Featured:     featured,
		ByCategory:   map[string]int{},
		ByDifficulty: map[string]int{},
	}
	for _, g := range byCategory {
		stats.ByCategory[g.ID] = g.Count
	}
	for _, g := range byDifficulty {
		stats.ByDifficulty[g.ID] = g.Count
	}
	if len(prepAvg) > 0 {
		stats.AvgPrepTime = int(math.Round(prepAvg[0].Avg))
	}
	if len(cookAvg) > 0 {
		stats.AvgCookTime = int(math.Round(cookAvg[0].Avg))
	}
	return stats
}

func groupBy(ctx context.Context, scope bson.M, field string) ([]groupCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: scope}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := recipeCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []groupCount
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func averageOf(ctx context.Context, scope bson.M, field string) ([]groupAvg, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: scope}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": field},
		}}},
	}
	cursor, err := recipeCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []groupAvg
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
