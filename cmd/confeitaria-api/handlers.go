package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/confeitaria/internal/apperr"
	"github.com/MikeMC777/confeitaria/internal/httpx"
	"github.com/MikeMC777/confeitaria/internal/ingredient"
	"github.com/MikeMC777/confeitaria/internal/order"
)

func registerRoutes(r gin.IRoutes, orders *order.Service, ingredients *ingredient.Service) {
	r.POST("/cadastrar-encomenda", createOrderHandler(orders))
	r.GET("/listar-encomendas", listOrdersHandler(orders))
	r.PUT("/atualizar-encomenda/:id", updateOrderHandler(orders))
	r.DELETE("/deletar-encomenda/:id", deleteOrderHandler(orders))

	r.POST("/cadastrar-ingrediente", createIngredientHandler(ingredients))
	r.GET("/listar-ingredientes", listIngredientsHandler(ingredients))
	r.PUT("/atualizar-ingrediente/:id", updateIngredientHandler(ingredients))
	r.DELETE("/deletar-ingrediente/:id", deleteIngredientHandler(ingredients))
}

// bindJSON decodes the body into dst. An empty body leaves dst untouched.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperr.ValidationCause(err)
	}
	return nil
}

// pathID parses the :id segment; anything but an integer is an unknown record.
func pathID(c *gin.Context, notFoundMsg string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.NotFound(notFoundMsg)
	}
	return id, nil
}

// createOrderHandler godoc
// @Summary      Cadastra uma encomenda
// @Tags         encomendas
// @Accept       json
// @Produce      json
// @Param        body  body      order.CreateOrderRequest  true  "Encomenda"
// @Success      201   {object}  httpx.MessageResponse
// @Failure      400   {object}  httpx.HTTPError
// @Router       /cadastrar-encomenda [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := bindJSON(c, &in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		if _, err := svc.Create(c.Request.Context(), in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		httpx.WriteMessage(c, http.StatusCreated, order.MsgCreated)
	}
}

// listOrdersHandler godoc
// @Summary      Lista as encomendas
// @Tags         encomendas
// @Produce      json
// @Success      200  {array}   order.Order
// @Failure      400  {object}  httpx.HTTPError
// @Router       /listar-encomendas [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// updateOrderHandler godoc
// @Summary      Atualiza parcialmente uma encomenda
// @Tags         encomendas
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "ID da encomenda"
// @Param        body  body      order.UpdateOrderRequest  true  "Campos a alterar"
// @Success      200   {object}  httpx.MessageResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      404   {object}  httpx.HTTPError
// @Router       /atualizar-encomenda/{id} [put]
func updateOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, order.MsgNotFound)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in order.UpdateOrderRequest
		if err := bindJSON(c, &in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := svc.Update(c.Request.Context(), id, in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		httpx.WriteMessage(c, http.StatusOK, order.MsgUpdated)
	}
}

// deleteOrderHandler godoc
// @Summary      Remove uma encomenda
// @Tags         encomendas
// @Produce      json
// @Param        id   path      int  true  "ID da encomenda"
// @Success      200  {object}  httpx.MessageResponse
// @Failure      404  {object}  httpx.HTTPError
// @Router       /deletar-encomenda/{id} [delete]
func deleteOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, order.MsgNotFound)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			httpx.WriteError(c, err)
			return
		}
		httpx.WriteMessage(c, http.StatusOK, order.MsgDeleted)
	}
}

// createIngredientHandler godoc
// @Summary      Cadastra um ingrediente
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        body  body      ingredient.CreateIngredientRequest  true  "Ingrediente"
// @Success      201   {object}  httpx.MessageResponse
// @Failure      400   {object}  httpx.HTTPError
// @Router       /cadastrar-ingrediente [post]
func createIngredientHandler(svc *ingredient.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ingredient.CreateIngredientRequest
		if err := bindJSON(c, &in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		if _, err := svc.Create(c.Request.Context(), in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		httpx.WriteMessage(c, http.StatusCreated, ingredient.MsgCreated)
	}
}

// listIngredientsHandler godoc
// @Summary      Lista os ingredientes
// @Tags         ingredientes
// @Produce      json
// @Success      200  {array}   ingredient.Ingredient
// @Failure      400  {object}  httpx.HTTPError
// @Router       /listar-ingredientes [get]
func listIngredientsHandler(svc *ingredient.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// updateIngredientHandler godoc
// @Summary      Atualiza parcialmente um ingrediente
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path      int                                 true  "ID do ingrediente"
// @Param        body  body      ingredient.UpdateIngredientRequest  true  "Campos a alterar"
// @Success      200   {object}  httpx.MessageResponse
// @Failure      400   {object}  httpx.HTTPError
// @Failure      404   {object}  httpx.HTTPError
// @Router       /atualizar-ingrediente/{id} [put]
func updateIngredientHandler(svc *ingredient.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, ingredient.MsgNotFound)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in ingredient.UpdateIngredientRequest
		if err := bindJSON(c, &in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := svc.Update(c.Request.Context(), id, in); err != nil {
			httpx.WriteError(c, err)
			return
		}
		httpx.WriteMessage(c, http.StatusOK, ingredient.MsgUpdated)
	}
}

// deleteIngredientHandler godoc
// @Summary      Remove um ingrediente
// @Tags         ingredientes
// @Produce      json
// @Param        id   path      int  true  "ID do ingrediente"
// @Success      200  {object}  httpx.MessageResponse
// @Failure      404  {object}  httpx.HTTPError
// @Router       /deletar-ingrediente/{id} [delete]
func deleteIngredientHandler(svc *ingredient.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, ingredient.MsgNotFound)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			httpx.WriteError(c, err)
			return
		}
		httpx.WriteMessage(c, http.StatusOK, ingredient.MsgDeleted)
	}
}
