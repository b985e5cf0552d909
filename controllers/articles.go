package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"redcar-backend/utils"
)

const articlesLimit = 5

var articlesClient = &http.Client{Timeout: 10 * time.Second}

type Article struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GetArticles relays a small fixed-size list of articles from the public
// demo endpoint shown on the news screen. The base URL is overridable via
// ARTICLES_BASE_URL. Nothing here touches the persisted collections.
func GetArticles(c *gin.Context) {
	base := os.Getenv("ARTICLES_BASE_URL")
	if base == "" {
		base = "https://jsonplaceholder.typicode.com"
	}

	url := fmt.Sprintf("%s/posts?_limit=%d", base, articlesLimit)
	resp, err := articlesClient.Get(url)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to fetch articles")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to fetch articles")
		return
	}

	var articles []Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to parse articles")
		return
	}
	if len(articles) > articlesLimit {
		articles = articles[:articlesLimit]
	}

	c.JSON(http.StatusOK, articles)
}
