package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/victorhprada/excel-automation/internal/config"
	"github.com/victorhprada/excel-automation/internal/server"
	"github.com/victorhprada/excel-automation/internal/util"
)

var (
	port    = flag.Int("port", 0, "porta do servidor (config.toml tem prioridade quando define port)")
	devMode = flag.Bool("dev", false, "modo de desenvolvimento")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Ferramenta de Validação de Faturamento")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("falha ao carregar configuração, usando padrões: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Servidor iniciando na porta %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("falha ao iniciar o servidor: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Abrindo o navegador: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Não foi possível abrir o navegador, acesse manualmente: %s\n", url)
		}
	} else {
		fmt.Printf("Modo de desenvolvimento: acesse %s\n", url)
	}

	fmt.Println("\nPressione Ctrl+C para encerrar...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nEncerrando o servidor...")
}
