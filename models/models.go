package models

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gobuffalo/events"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gofrs/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/domain"
)

// DB is a connection to the database to be used throughout the application.
var DB *pop.Connection

func init() {
	// initialize model validation library
	mValidate = validator.New()

	// validate nullable columns by their underlying value
	mValidate.RegisterCustomTypeFunc(nullStringValue, nulls.String{})

	// register custom validators for custom types
	for tag, vFunc := range fieldValidators {
		if err := mValidate.RegisterValidation(tag, vFunc, false); err != nil {
			panic(fmt.Sprintf("failed to register validation for %s: %s", tag, err))
		}
	}
}

// Connect opens the database connection named by env, as configured in database.yml, and makes it the default
// connection
func Connect(env string) error {
	c, err := pop.Connect(env)
	if err != nil {
		return fmt.Errorf("error connecting to database ... %w", err)
	}
	pop.Debug = env == domain.EnvDevelopment
	DB = c
	return nil
}

// Tx retrieves the database transaction from the context
func Tx(ctx context.Context) *pop.Connection {
	tx, ok := ctx.Value(domain.ContextKeyTx).(*pop.Connection)
	if !ok {
		domain.Logger.Debug("no transaction found in context, called from: " + domain.GetFunctionName(2))
		return DB
	}
	return tx
}

// WithTx returns a copy of ctx that carries the given transaction
func WithTx(ctx context.Context, tx *pop.Connection) context.Context {
	return context.WithValue(ctx, domain.ContextKeyTx, tx)
}

func fieldByName(i any, name ...string) reflect.Value {
	if len(name) < 1 {
		return reflect.Value{}
	}
	f := reflect.ValueOf(i).Elem().FieldByName(name[0])
	if !f.IsValid() {
		return fieldByName(i, name[1:]...)
	}
	return f
}

func create(tx *pop.Connection, m any) error {
	uuidField := fieldByName(m, "ID")
	if uuidField.IsValid() && uuidField.Interface().(uuid.UUID).Version() == 0 {
		uuidField.Set(reflect.ValueOf(domain.GetUUID()))
	}

	valErrs, err := tx.ValidateAndCreate(m)
	if err != nil {
		return appErrorFromDB(err, api.ErrorCreateFailure)
	}

	if valErrs.HasAny() {
		return api.NewAppError(
			errors.New(flattenPopErrors(valErrs)),
			api.ErrorValidation,
			api.CategoryUser,
		)
	}
	return nil
}

func appErrorFromDB(err error, defaultKey api.ErrorKey) error {
	if err == nil {
		return nil
	}

	appErr := api.NewAppError(err, defaultKey, api.CategoryDatabase)

	if !domain.IsOtherThanNoRows(err) {
		appErr.Category = api.CategoryNotFound
		appErr.Key = api.ErrorNoRows
		return appErr
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		appErr.Err = fmt.Errorf("%w Detail: %s", err, pgError.Detail)

		switch pgError.Code {
		case pgerrcode.ForeignKeyViolation:
			appErr.Key = api.ErrorForeignKeyViolation
			appErr.Category = api.CategoryUser
		case pgerrcode.UniqueViolation:
			appErr.Key = api.ErrorUniqueKeyViolation
			appErr.Category = api.CategoryUser
		}
	}

	return appErr
}

func find(tx *pop.Connection, m any, id uuid.UUID) error {
	err := tx.Find(m, id)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}

func update(tx *pop.Connection, m any) error {
	valErrs, err := tx.ValidateAndUpdate(m)
	if err != nil {
		return appErrorFromDB(err, api.ErrorUpdateFailure)
	}

	if valErrs.HasAny() {
		return api.NewAppError(
			errors.New(flattenPopErrors(valErrs)),
			api.ErrorValidation,
			api.CategoryUser,
		)
	}
	return nil
}

func destroy(tx *pop.Connection, m any) error {
	err := tx.Destroy(m)
	return appErrorFromDB(err, api.ErrorDestroyFailure)
}

// This can include an event payload, which is a map[string]any
func emitEvent(e events.Event) {
	cancel := domain.Listeners.Expect()
	if err := events.Emit(e); err != nil {
		cancel()
		domain.ErrLogger.Printf("error emitting event %s ... %v", e.Kind, err)
	}
}

func nullStringValue(field reflect.Value) any {
	if n, ok := field.Interface().(nulls.String); ok && n.Valid {
		return n.String
	}
	return ""
}
