package validators

import "go.mongodb.org/mongo-driver/bson"

const calendarDatePattern = `^\d{4}-\d{2}-\d{2}$`

var ExhibitionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"description",
			"location",
			"start_date",
			"end_date",
			"ticket_price",
			"image_url",
			"total_slots",
			"available_slots",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},
			"title": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 200,
			},
			"description": bson.M{
				"bsonType":  "string",
				"minLength": 10,
				"maxLength": 5000,
			},
			"location": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 200,
			},
			"start_date": bson.M{
				"bsonType": "string",
				"pattern":  calendarDatePattern,
			},
			"end_date": bson.M{
				"bsonType": "string",
				"pattern":  calendarDatePattern,
			},
			"ticket_price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},
			"image_url": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"total_slots": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  100000,
			},
			// Reservations decrement this with a guarded $inc, so it must
			// never go negative.
			"available_slots": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},
			"status": bson.M{
				"enum": []string{"upcoming", "ongoing", "past"},
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
