package util

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"github.com/julienschmidt/httprouter"
	"github.com/kanruethaiii/backend-cat/dal"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"net/http"
	"reflect"
	"sync"
	"testing"
)

// DbMock points dal.Q at a postgres dialect over sqlmock. SQL is logged through rlog
// and the mock connection is closed when the test ends.
func DbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{Conn: mockDB})
	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: GormLogger()})
	require.NoError(t, err)

	dal.SetDefault(gormDB)
	return mockDB, gormDB, mock
}

// ObjectToRows For unit test usage. Columns are the gorm column names of the model.
func ObjectToRows(objects ...interface{}) (*sqlmock.Rows, error) {
	if len(objects) == 0 {
		return nil, nil
	}
	s, err := schema.Parse(objects[0], &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}
	columns := make([]string, 0, len(s.Fields))
	fields := make([]*schema.Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.DBName == "" {
			continue
		}
		columns = append(columns, f.DBName)
		fields = append(fields, f)
	}
	rows := sqlmock.NewRows(columns)
	for _, object := range objects {
		rv := reflect.ValueOf(object)
		values := make([]driver.Value, 0, len(fields))
		for _, f := range fields {
			v, _ := f.ValueOf(context.Background(), rv)
			dv, err := driver.DefaultParameterConverter.ConvertValue(v)
			if err != nil {
				return nil, err
			}
			values = append(values, dv)
		}
		rows.AddRow(values...)
	}
	return rows, nil
}

// WithParams attaches httprouter params to a request, as the router does.
func WithParams(r *http.Request, params ...httprouter.Param) *http.Request {
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, httprouter.Params(params))
	return r.WithContext(ctx)
}

// WithID is WithParams for the common ":id" parameter.
func WithID(r *http.Request, id string) *http.Request {
	return WithParams(r, httprouter.Param{Key: "id", Value: id})
}
