package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fruitshop/internal/catalog"
)

/*
GET /products
- search / category / minPrice / maxPrice / inStock / sortBy query params
- pagination is OPTIONAL: applied only when page + limit are both present
*/
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit search=%s category=%s sortBy=%s",
			route,
			c.Query("search"),
			c.Query("category"),
			c.Query("sortBy"),
		)

		filters := catalog.Filters{
			Category: strings.TrimSpace(c.Query("category")),
			SortBy:   strings.TrimSpace(c.Query("sortBy")),
		}

		if raw := c.Query("minPrice"); raw != "" {
			min, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid minPrice")
				return
			}
			filters.MinPrice = &min
		}
		if raw := c.Query("maxPrice"); raw != "" {
			max, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid maxPrice")
				return
			}
			filters.MaxPrice = &max
		}
		if raw := c.Query("inStock"); raw != "" {
			inStock, err := strconv.ParseBool(raw)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid inStock")
				return
			}
			filters.InStock = inStock
		}

		products := store.Search(c.Query("search"), filters)

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"data": paginate(products, page, limit),
				"pagination": gin.H{
					"page":  page,
					"limit": limit,
					"total": len(products),
				},
			})
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func GetFeaturedProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/featured"
		defer handlePanic(c, route)

		limit := 6
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondWithError(c, http.StatusBadRequest, route, "invalid limit")
				return
			}
			limit = parsed
		}

		c.JSON(http.StatusOK, store.Featured(limit))
	}
}

func GetProductByID(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		product, err := store.GetByID(id)
		if err != nil {
			var notFound catalog.NotFoundError
			if errors.As(err, &notFound) {
				respondWithError(c, http.StatusNotFound, route, "product not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "lookup failed")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func GetCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		categories := store.Categories()
		log.Printf("[%s] returning %d categories", route, len(categories))
		c.JSON(http.StatusOK, categories)
	}
}

func GetCategoryByID(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories/:id"
		defer handlePanic(c, route)

		category, ok := store.CategoryByID(c.Param("id"))
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "category not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": store.ProductsByCategory(category.ID),
		})
	}
}

func GetPromotions(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /promotions"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, store.ActivePromotions(time.Now()))
	}
}
