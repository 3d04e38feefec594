package validators

import "go.mongodb.org/mongo-driver/bson"

var ContactMessageValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
			"message",
			"source",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
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
			"subject": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},
			"message": bson.M{
				"bsonType":  "string",
				"minLength": 10,
				"maxLength": 5000,
			},
			"source": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},
			"status": bson.M{
				"enum": []string{"new", "read", "replied"},
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
