package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commitscale/config"
	"commitscale/internal/model"
	"commitscale/internal/repository"
)

var likertOptions = []model.Option{
	{Text: "Strongly disagree", Points: 1},
	{Text: "Disagree", Points: 2},
	{Text: "Neutral", Points: 3},
	{Text: "Agree", Points: 4},
	{Text: "Strongly agree", Points: 5},
}

type seedItem struct {
	id        string
	text      string
	qType     model.QuestionType
	dimension model.Dimension
	tags      []string
	fixed     bool
	reversed  bool
}

// The fixed block covers all three commitment dimensions; the rest of the
// bank is sampled per test. A few rows keep their original ids so results
// from already-issued tests keep resolving through the legacy table.
var bank = []seedItem{
	{text: "I would be very happy to spend the rest of my career with this organization.", qType: model.QuestionTypeLikert, dimension: model.DimensionAffective, fixed: true},
	{text: "I really feel as if this organization's problems are my own.", qType: model.QuestionTypeLikert, dimension: model.DimensionAffective, fixed: true},
	{text: "I do not feel a strong sense of belonging to my organization.", qType: model.QuestionTypeLikert, dimension: model.DimensionAffective, fixed: true, reversed: true},
	{text: "I do not feel emotionally attached to this organization.", qType: model.QuestionTypeLikert, dimension: model.DimensionAffective, reversed: true},
	{text: "This organization has a great deal of personal meaning for me.", qType: model.QuestionTypeLikert, dimension: model.DimensionAffective},
	{text: "I enjoy discussing my organization with people outside it.", qType: model.QuestionTypeLikert, dimension: model.DimensionAffective},

	{text: "Right now, staying with my organization is a matter of necessity as much as desire.", qType: model.QuestionTypeLikert, dimension: model.DimensionContinuance, fixed: true},
	{text: "It would be very hard for me to leave my organization right now, even if I wanted to.", qType: model.QuestionTypeLikert, dimension: model.DimensionContinuance, fixed: true},
	{text: "Too much of my life would be disrupted if I decided to leave my organization now.", qType: model.QuestionTypeLikert, dimension: model.DimensionContinuance},
	{text: "I feel that I have too few options to consider leaving this organization.", qType: model.QuestionTypeLikert, dimension: model.DimensionContinuance},
	{text: "One of the few negative consequences of leaving would be the scarcity of available alternatives.", qType: model.QuestionTypeLikert, dimension: model.DimensionContinuance},

	{text: "I do not feel any obligation to remain with my current employer.", qType: model.QuestionTypeLikert, dimension: model.DimensionNormative, fixed: true, reversed: true},
	{text: "Even if it were to my advantage, I do not feel it would be right to leave my organization now.", qType: model.QuestionTypeLikert, dimension: model.DimensionNormative, fixed: true},
	{text: "I would feel guilty if I left my organization now.", qType: model.QuestionTypeLikert, dimension: model.DimensionNormative},
	{text: "This organization deserves my loyalty.", qType: model.QuestionTypeLikert, dimension: model.DimensionNormative},
	{text: "I owe a great deal to my organization.", qType: model.QuestionTypeLikert, dimension: model.DimensionNormative},

	// Tag-resolved rows, no explicit dimension field
	{text: "I talk about this organization to my friends as a great place to work.", qType: model.QuestionTypeLikert, tags: []string{"Affective", "engagement"}},
	{text: "Leaving now would require considerable personal sacrifice.", qType: model.QuestionTypeLikert, tags: []string{"Continuance"}},
	{text: "I was taught to believe in the value of remaining loyal to one organization.", qType: model.QuestionTypeLikert, tags: []string{"Normative"}},

	// Legacy rows keep their original ids and carry no dimension metadata
	{id: "c9bf4b18-3873-4a1a-bda4-868cc3f7679a", text: "Do you feel proud to tell others you are part of this organization?", qType: model.QuestionTypeYesNo},
	{id: "0256d0e5-d11f-4e66-9132-f572abc215a4", text: "Would leaving this organization cost you benefits you could not easily replace?", qType: model.QuestionTypeYesNo},
	{id: "efb51db2-4a0b-4e08-8047-68872a833608", text: "Do you feel you owe it to your employer to stay?", qType: model.QuestionTypeYesNo},
}

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewQuestionRepo(client.Database(cfg.MongoDB))

	for order, item := range bank {
		q := buildQuestion(item, order)
		if err := repo.Upsert(ctx, q); err != nil {
			log.Fatalf("Failed to upsert question %s: %v", q.ID, err)
		}
	}

	fmt.Printf("Seeded %d questions\n", len(bank))
}

func buildQuestion(item seedItem, order int) *model.Question {
	id := item.id
	if id == "" {
		id = uuid.New().String()
	}

	q := &model.Question{
		ID:        id,
		Text:      item.text,
		Type:      item.qType,
		Dimension: item.dimension,
		Tags:      item.tags,
		Fixed:     item.fixed,
		Active:    true,
		Order:     order,
	}

	switch item.qType {
	case model.QuestionTypeYesNo:
		q.Options = []model.Option{{Text: "Sim"}, {Text: "Não"}}
		q.PointsByOption = map[string]float64{"sim": 5, "não": 1}
	default:
		q.Options = likertOptions
		if item.reversed {
			q.Options = reverse(likertOptions)
		}
	}
	return q
}

func reverse(opts []model.Option) []model.Option {
	out := make([]model.Option, len(opts))
	for i, o := range opts {
		out[i] = model.Option{Text: o.Text, Points: float64(len(opts) - i)}
	}
	return out
}
