package ingredient_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/confeitaria/internal/apperr"
	"github.com/MikeMC777/confeitaria/internal/ingredient"
	"github.com/MikeMC777/confeitaria/internal/ingredient/ingredientmock"
)

func strPtr(v string) *string { return &v }

func TestService_Create_NameOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in *ingredient.Ingredient) error {
		assert.Equal(t, "Chocolate", in.ProductName)
		assert.Nil(t, in.Base)
		assert.Nil(t, in.Filling)
		in.ID = 1
		return nil
	})

	got, err := svc.Create(context.Background(), ingredient.CreateIngredientRequest{ProductName: "Chocolate"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestService_Create_RequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ingredient.NewService(ingredientmock.NewMockRepository(ctrl), nil)

	_, err := svc.Create(context.Background(), ingredient.CreateIngredientRequest{Base: strPtr(gofakeit.Dessert())})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, ingredient.MsgNameRequired, err.Error())
}

func TestService_Create_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Create(context.Background(), ingredient.CreateIngredientRequest{ProductName: "Leite"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}

func TestService_Update_MergesSuppliedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)
	existing := ingredient.Ingredient{ID: 2, ProductName: "Chocolate", Base: strPtr("Massa branca")}

	var saved ingredient.Ingredient
	mockRepo.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, apply func(*ingredient.Ingredient) error) error {
			in := existing
			if err := apply(&in); err != nil {
				return err
			}
			saved = in
			return nil
		})

	err := svc.Update(context.Background(), 2, ingredient.UpdateIngredientRequest{Filling: strPtr("Ninho")})
	require.NoError(t, err)
	assert.Equal(t, "Chocolate", saved.ProductName)
	require.NotNil(t, saved.Base)
	assert.Equal(t, "Massa branca", *saved.Base)
	require.NotNil(t, saved.Filling)
	assert.Equal(t, "Ninho", *saved.Filling)
}

func TestService_Update_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)
	mockRepo.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, apply func(*ingredient.Ingredient) error) error {
			return apply(&ingredient.Ingredient{ID: 2, ProductName: "Chocolate"})
		})

	err := svc.Update(context.Background(), 2, ingredient.UpdateIngredientRequest{ProductName: strPtr("")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)
	mockRepo.EXPECT().Update(gomock.Any(), int64(404), gomock.Any()).Return(ingredient.ErrNotFound)

	err := svc.Update(context.Background(), 404, ingredient.UpdateIngredientRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, ingredient.MsgNotFound, err.Error())
}

func TestService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)

	mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))
	_, err := svc.List(context.Background())
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	mockRepo.EXPECT().Delete(gomock.Any(), int64(9)).Return(false, nil)
	err = svc.Delete(context.Background(), 9)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	mockRepo.EXPECT().Delete(gomock.Any(), int64(9)).Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), 9))
}

func TestService_Update_NullClearsOptionalFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)
	existing := ingredient.Ingredient{ID: 2, ProductName: "Chocolate", Base: strPtr("Massa branca"), Filling: strPtr("Ninho")}

	var saved ingredient.Ingredient
	mockRepo.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, apply func(*ingredient.Ingredient) error) error {
			in := existing
			if err := apply(&in); err != nil {
				return err
			}
			saved = in
			return nil
		})

	var req ingredient.UpdateIngredientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"base":null}`), &req))

	require.NoError(t, svc.Update(context.Background(), 2, req))
	assert.Equal(t, "Chocolate", saved.ProductName)
	assert.Nil(t, saved.Base)
	require.NotNil(t, saved.Filling)
	assert.Equal(t, "Ninho", *saved.Filling)
}

func TestService_Update_NullName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ingredientmock.NewMockRepository(ctrl)
	svc := ingredient.NewService(mockRepo, nil)
	mockRepo.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, apply func(*ingredient.Ingredient) error) error {
			return apply(&ingredient.Ingredient{ID: 2, ProductName: "Chocolate"})
		})

	var req ingredient.UpdateIngredientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome_produto":null}`), &req))

	err := svc.Update(context.Background(), 2, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, ingredient.MsgNameRequired, err.Error())
}
