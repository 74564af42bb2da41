package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"hbs/src/boot"
	"hbs/src/config"
	"hbs/src/controllers"
	"hbs/src/middlewares"
	"hbs/src/utils"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const apiPrefix string = "/api"

var staydateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	return err == nil
}

// gtdate requires the tagged field to fall strictly after the named one,
// e.g. a check-out date after its check-in date.
var gtdateField validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	fieldValue, ok := field.Interface().(string)
	if !ok {
		return false
	}
	fielddatetime, err := time.Parse(config.DATE_PARSE_FORMAT, fieldValue)
	if err != nil {
		return false
	}
	return datetime.After(fielddatetime)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("staydate", staydateValidatorFunc)
		v.RegisterValidation("gtdate", gtdateField)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			log.Println("server is under maintenance")
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, "server is under maintenance")
			return
		}
	})
	return g
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func setAuthCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(config.AUTH_COOKIE, token, config.AUTH_COOKIE_MAX_AGE, "/", "", utils.IsProd(), true)
}

func userRoutes(g *gin.Engine) *gin.RouterGroup {
	users := apiGroup(g).Group("/users")
	users.
		POST("/register", func(ctx *gin.Context) {
			token, status, err := controllers.AuthRegister(ctx)
			if err != nil {
				log.Printf("[AuthRegister] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			setAuthCookie(ctx, *token)
			ctx.JSON(status, gin.H{"message": "User registered successfully"})
		}).
		GET("/me", middlewares.AuthMiddleware, func(ctx *gin.Context) {
			user, status, err := controllers.AuthMe(ctx)
			if err != nil {
				log.Printf("[AuthMe] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(status, user)
		})
	return users
}

func authRoutes(g *gin.Engine) *gin.RouterGroup {
	auth := apiGroup(g).Group("/auth")
	auth.
		POST("/login", func(ctx *gin.Context) {
			token, userID, status, err := controllers.AuthLogin(ctx)
			if err != nil {
				log.Printf("[AuthLogin] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			setAuthCookie(ctx, *token)
			ctx.JSON(status, gin.H{"userId": userID})
		}).
		POST("/logout", func(ctx *gin.Context) {
			ctx.SetCookie(config.AUTH_COOKIE, "", -1, "/", "", utils.IsProd(), true)
			ctx.Status(http.StatusOK)
		}).
		GET("/validate-token", middlewares.AuthMiddleware, func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"userId": ctx.GetUint("id")})
		})
	return auth
}

func hotelRoutes(g *gin.Engine) *gin.RouterGroup {
	hotels := apiGroup(g).Group("/hotels")
	return hotelHandlers(hotels)
}

func myHotelRoutes(g *gin.Engine) *gin.RouterGroup {
	myHotels := apiGroup(g).Group("/my-hotels")
	myHotels.Use(middlewares.AuthMiddleware)
	return myHotelHandlers(myHotels)
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()

	router := setupRouter()

	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Content-Type")
		cc.AllowOrigins = []string{os.Getenv("FRONTEND_URL")}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	registerValidators()

	router = maintenanceModeMiddleware(router)

	userRoutes(router)
	authRoutes(router)
	hotelRoutes(router)
	myHotelRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "7000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
