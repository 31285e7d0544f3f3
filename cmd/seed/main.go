package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"essaycoach/internal/model"
	"essaycoach/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "essaycoach"
	}
	questionRepo := repository.NewQuestionRepo(client.Database(dbName))

	count, err := questionRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}
	if count > 0 {
		fmt.Printf("Question bank already seeded (%d questions), nothing to do\n", count)
		return
	}

	questions := []*model.Question{
		{
			Topic:  "行政法",
			Text:   "行政處分之撤銷與廢止有何不同？請就其要件、法律效果及信賴保護原則之適用分別論述之。",
			Source: "106年公務人員高等考試三級",
		},
		{
			Topic:  "行政法",
			Text:   "何謂行政裁量？裁量瑕疵有哪些類型？行政法院對裁量行為之審查界限為何？試舉例說明之。",
			Source: "108年公務人員高等考試三級",
		},
		{
			Topic:  "行政法",
			Text:   "人民對行政機關之決定不服時，得提起之行政救濟途徑有哪些？試就訴願與行政訴訟之關係論述之。",
			Source: "110年地方特考三等",
		},
		{
			Topic:  "社會福利",
			Text:   "我國長期照顧十年計畫2.0之主要內容為何？試從服務對象、服務項目與財源籌措三個面向，評析其成效與挑戰。",
			Source: "109年公務人員高等考試三級",
		},
		{
			Topic:  "社會福利",
			Text:   "何謂社會救助法上之「最低生活費」？其計算方式為何？試評析現行制度對脫離貧窮誘因之影響。",
			Source: "107年地方特考三等",
		},
		{
			Topic:  "社會福利",
			Text:   "試論社會保險與社會救助之異同，並說明我國國民年金制度之定位及其實施爭議。",
			Source: "111年公務人員高等考試三級",
		},
	}

	for _, question := range questions {
		question.ID = uuid.New().String()
		question.CreatedAt = time.Now()
		if err := questionRepo.Create(ctx, question); err != nil {
			log.Fatalf("Failed to insert question %q: %v", question.Topic, err)
		}
	}

	fmt.Printf("Successfully seeded %d questions\n", len(questions))
}
