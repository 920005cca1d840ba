package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service"
	"github.com/darkkaiser/catalog-server/internal/service/api"
	"github.com/darkkaiser/catalog-server/internal/service/catalog"
	"github.com/darkkaiser/catalog-server/internal/service/catalog/idgen"
	"github.com/darkkaiser/catalog-server/internal/service/notification"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

const (
	banner = `
   ____      _         _                 ____
  / ___|__ _| |_ __ _ | | ___   __ _   / ___|  ___  _ __ __   __  ___  _ __
 | |   / _` + "`" + ` | __/ _` + "`" + ` || |/ _ \ / _` + "`" + ` |  \___ \ / _ \| '__|\ \ / / / _ \| '__|
 | |__| (_| | || (_| || | (_) | (_| |   ___) |  __/| |    \ V / |  __/| |
  \____\__,_|\__\__,_||_|\___/ \__, |  |____/ \___||_|     \_/   \___||_|
                               |___/                             %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentConfig(config.AppName)
	} else {
		logOpts = applog.NewProductionConfig(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 준수 여부 진단 (기본 비밀번호 사용 등)
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 알림 서비스를 생성한다.
	notificationService := notification.NewService(appConfig)

	// 카탈로그 도메인을 구성한다.
	idGenerator, err := idgen.NewSnowflakeGenerator()
	if err != nil {
		log.Fatalf("상품 ID 생성기 초기화 실패: %v", err)
	}

	store := catalog.NewStore(idGenerator)
	catalogController := catalog.NewCatalog(store, catalog.NewSelection(), catalog.NewBanner(), notificationService)

	// 상품 시드 파일이 설정된 경우 초기 상품 목록을 적재한다.
	if appConfig.Catalog.SeedFile != "" {
		loaded, err := catalog.LoadSeedFile(store, appConfig.Catalog.SeedFile)
		if err != nil {
			log.Fatalf("상품 시드 파일 적재 실패: %v", err)
		}

		applog.WithComponentAndFields("main", log.Fields{
			"seed_file": appConfig.Catalog.SeedFile,
			"loaded":    loaded,
		}).Info("초기 상품 목록 적재 완료")
	}

	apiService := api.NewService(appConfig, catalogController, notificationService, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{notificationService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}
