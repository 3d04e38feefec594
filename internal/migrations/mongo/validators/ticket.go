package validators

import "go.mongodb.org/mongo-driver/bson"

var TicketValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"exhibition_id",
			"name",
			"email",
			"quantity",
			"unit_price",
			"total_price",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},
			"exhibition_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"email": bson.M{
				"bsonType": "string",
			},
			"phone": bson.M{
				"bsonType": "string",
				"pattern":  `^\+[1-9]\d{7,14}$`,
			},
			"quantity": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},
			"unit_price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},
			"total_price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},
			"status": bson.M{
				"enum": []string{"reserved", "cancelled"},
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
