package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/geo-locations/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns     = []string{"user_id", "username", "email", "password_hash", "created_at"}
	locationColumns = []string{"location_id", "user_id", "latitude", "longitude", "description", "image_urls", "comments", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("user_id", "username", "email", "password_hash").
		Values(user.UserID, user.Username, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildFindUsernamesQuery selects (user_id, username) pairs for the given ids
// using a single IN clause.
func buildFindUsernamesQuery(userIDs []string) (string, []any, error) {
	return psql.
		Select("user_id", "username").
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userIDs}).
		ToSql()
}

func buildCreateLocationQuery(location models.Location) (string, []any, error) {
	return psql.
		Insert(location.TableName()).
		Columns("location_id", "user_id", "latitude", "longitude", "description", "image_urls", "comments").
		Values(
			location.LocationID,
			location.Owner.UserID,
			float64(location.Latitude),
			float64(location.Longitude),
			location.Description,
			location.ImageURLs,
			location.Comments,
		).
		Suffix(returning(locationColumns)).
		ToSql()
}

// buildSelectLocationsQuery orders by creation time; UUIDv7 ids break ties in
// insertion order.
func buildSelectLocationsQuery() (string, []any, error) {
	return psql.
		Select(locationColumns...).
		From(models.Location{}.TableName()).
		OrderBy("created_at ASC", "location_id ASC").
		ToSql()
}

func buildSelectLocationQuery(locationID string) (string, []any, error) {
	return psql.
		Select(locationColumns...).
		From(models.Location{}.TableName()).
		Where(sq.Eq{"location_id": locationID}).
		ToSql()
}

func buildLocationExistsQuery(locationID string) (string, []any, error) {
	return psql.
		Select("1").
		From(models.Location{}.TableName()).
		Where(sq.Eq{"location_id": locationID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
}

// buildPrependCommentQuery concatenates the new comment in front of the
// stored JSONB array in one statement, so concurrent comments are never lost.
func buildPrependCommentQuery(locationID string, comment models.Comment) (string, []any, error) {
	return psql.
		Update(models.Location{}.TableName()).
		Set("comments", sq.Expr("?::jsonb || comments", models.Comments{comment})).
		Where(sq.Eq{"location_id": locationID}).
		Suffix("RETURNING comments").
		ToSql()
}

func buildAppendImageURLsQuery(locationID string, urls []string) (string, []any, error) {
	return psql.
		Update(models.Location{}.TableName()).
		Set("image_urls", sq.Expr("image_urls || ?::jsonb", models.ImageURLs(urls))).
		Where(sq.Eq{"location_id": locationID}).
		Suffix(returning(locationColumns)).
		ToSql()
}
