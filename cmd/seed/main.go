package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/panisul/gestao/internal/adapter/recordstore"
	"github.com/panisul/gestao/internal/domain/sale"
	"github.com/panisul/gestao/internal/store"
	"github.com/panisul/gestao/pkg/logger"
)

// Popula uma API de registros em execução com um dia de movimento de
// exemplo, passando pelas mesmas operações de sessão que a aplicação usa.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	url := flag.String("url", "http://localhost:8080/api/v1", "URL base da API de registros")
	flag.Parse()

	s := store.New(
		store.WithRemote(recordstore.NewClient(*url)),
		store.WithLogger(logger.NewLogger()),
	)
	s.Sync(context.Background())

	// Produção da manhã
	s.RegisterProduction("Pão Francês", 120)
	s.RegisterProduction("Pão Doce", 40)
	s.RegisterProduction("Baguete", 25)
	s.RegisterProduction("Pão Francês", 60) // segunda fornada

	// Clientes e vendas do dia
	maria := s.AddClient("Maria das Graças", "11 98888-0001", "", "", "Rua das Flores, 12")
	lanchonete := s.AddClient("Lanchonete do Zé", "11 97777-0002", "ze@lanchonete.com.br", "12.345.678/0001-90", "")

	s.RegisterSale(maria, "Pão Francês", 10, sale.PaymentPix, nil)
	s.RegisterSale(maria, "Pão Doce", 4, sale.PaymentCash, nil)

	due := time.Now().AddDate(0, 0, 7)
	s.RegisterSale(lanchonete, "Pão Francês", 80, sale.PaymentDeferred, &due)

	// Uma troca: baguete amassada na entrega
	s.RegisterSwap(lanchonete, "Baguete", 2, "Pão Doce", "produto amassado na entrega")

	// A propagação é disparada sem espera; dar um momento para as
	// escritas chegarem antes de encerrar o processo.
	time.Sleep(2 * time.Second)

	fmt.Printf("Sessão de exemplo registrada: %d produtos, %d clientes, %d vendas, %d trocas\n",
		len(s.Products()), len(s.Clients()), len(s.Sales()), len(s.Swaps()))
}
