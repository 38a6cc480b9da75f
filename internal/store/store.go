package store

import (
	"context"
	"time"

	"github.com/panisul/gestao/internal/domain/client"
	"github.com/panisul/gestao/internal/domain/product"
	"github.com/panisul/gestao/internal/domain/sale"
	"github.com/panisul/gestao/internal/domain/swap"
	"github.com/panisul/gestao/pkg/logger"
	"github.com/panisul/gestao/pkg/metrics"
)

// RecordAPI é o canal de saída para a API de registros. A propagação é de
// mão única e de melhor esforço: o Store dispara as escritas sem aguardar
// o resultado, e falhas são visíveis apenas em logs e métricas.
type RecordAPI interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	CreateProduct(ctx context.Context, p product.Product) error
	ListClients(ctx context.Context) ([]client.Client, error)
	CreateClient(ctx context.Context, c client.Client) error
	ListSales(ctx context.Context) ([]sale.Sale, error)
	CreateSale(ctx context.Context, s sale.Sale) error
	ListSwaps(ctx context.Context) ([]swap.Swap, error)
	CreateSwap(ctx context.Context, s swap.Swap) error
}

// Store centraliza o estado da sessão de trabalho: as listas de produtos,
// clientes, vendas e trocas do dia, e as operações que as alteram. Todas
// as mutações passam pelas quatro operações de registro; as coleções nunca
// são alteradas diretamente.
//
// O Store atende uma única sessão interativa por vez: as operações são
// invocadas em sequência por um único ator lógico, então as coleções não
// carregam trava. Apenas a propagação para a API de registros ocorre em
// goroutines próprias, sobre cópias dos registros.
type Store struct {
	initialized bool
	remote      RecordAPI
	logger      logger.Logger

	products []product.Product
	clients  []client.Client
	sales    []sale.Sale
	swaps    []swap.Swap
}

// Option configura o Store na construção
type Option func(*Store)

// WithRemote liga o Store a uma API de registros. Sem remote, a sessão
// opera apenas em memória.
func WithRemote(remote RecordAPI) Option {
	return func(s *Store) {
		s.remote = remote
	}
}

// WithLogger define o logger da sessão
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New cria um Store vazio pronto para uso
func New(opts ...Option) *Store {
	s := &Store{
		initialized: true,
		logger:      logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mustSession falha imediatamente quando o Store não foi criado por New.
// Este é o único erro duro do sistema: indica um defeito de integração,
// não um problema de dados em tempo de execução.
func (s *Store) mustSession() {
	if !s.initialized {
		panic("store: uso fora de uma sessão inicializada; crie o Store com store.New")
	}
}

// Sync substitui as coleções locais pelo conteúdo da API de registros.
// As quatro leituras são independentes: a falha de uma delas deixa a
// coleção correspondente vazia e não impede as demais nem a operação da
// sessão — começar vazio é um estado válido, não um erro.
func (s *Store) Sync(ctx context.Context) {
	s.mustSession()
	if s.remote == nil {
		return
	}

	if products, err := s.remote.ListProducts(ctx); err != nil {
		s.logger.Warn("falha ao sincronizar produtos; sessão segue com a coleção vazia", "error", err)
	} else {
		s.products = products
	}

	if clients, err := s.remote.ListClients(ctx); err != nil {
		s.logger.Warn("falha ao sincronizar clientes; sessão segue com a coleção vazia", "error", err)
	} else {
		s.clients = clients
	}

	if sales, err := s.remote.ListSales(ctx); err != nil {
		s.logger.Warn("falha ao sincronizar vendas; sessão segue com a coleção vazia", "error", err)
	} else {
		s.sales = sales
	}

	if swaps, err := s.remote.ListSwaps(ctx); err != nil {
		s.logger.Warn("falha ao sincronizar trocas; sessão segue com a coleção vazia", "error", err)
	} else {
		s.swaps = swaps
	}
}

// RegisterProduction registra a produção de um produto. Se o produto já
// existe no estoque do dia, soma a quantidade; caso contrário, cria o
// produto com o estoque inicial correspondente e o propaga para a API de
// registros. Somas a produtos existentes não são propagadas — lacuna
// herdada do fluxo original, observável apenas pelo log.
//
// Quantidades não positivas não são rejeitadas aqui; quem registra deve
// validar antes de chamar.
func (s *Store) RegisterProduction(name string, quantity int) {
	s.mustSession()

	for i := range s.products {
		if s.products[i].Name == name {
			s.products[i].DailyStock += quantity
			s.logger.Debug("produção somada a produto existente; incremento não propagado", "produto", name, "quantidade", quantity)
			return
		}
	}

	p := product.New(name, quantity)
	s.products = append(s.products, p)
	s.propagate("products", func(ctx context.Context) error {
		return s.remote.CreateProduct(ctx, p)
	})
}

// RegisterSale registra uma venda: baixa o estoque diário do produto e
// acrescenta o registro à lista de vendas. A baixa é incondicional — o
// estoque pode ficar negativo — e as referências a cliente e produto não
// são conferidas. Em vendas a prazo, dueDate carrega o vencimento.
func (s *Store) RegisterSale(clientID, productName string, quantity int, paymentType sale.PaymentType, dueDate *time.Time) {
	s.mustSession()

	s.decrementStock(productName, quantity)

	v := sale.New(clientID, productName, quantity, paymentType, dueDate)
	s.sales = append(s.sales, v)
	s.propagate("sales", func(ctx context.Context) error {
		return s.remote.CreateSale(ctx, v)
	})
}

// RegisterSwap registra uma troca (devolução): baixa o estoque do produto
// entregue e acrescenta o registro à lista de trocas. O produto devolvido
// pelo cliente não volta ao estoque.
func (s *Store) RegisterSwap(clientID, productName string, quantity int, returnedProduct, reason string) {
	s.mustSession()

	s.decrementStock(productName, quantity)

	t := swap.New(clientID, productName, quantity, returnedProduct, reason)
	s.swaps = append(s.swaps, t)
	s.propagate("swaps", func(ctx context.Context) error {
		return s.remote.CreateSwap(ctx, t)
	})
}

// AddClient cadastra um novo cliente e retorna o ID gerado. O retorno é
// síncrono: o chamador normalmente usa o ID em seguida para associar uma
// venda ou troca, mesmo com a propagação ainda em andamento.
func (s *Store) AddClient(name, phone, email, legalID, address string) string {
	s.mustSession()

	c := client.New(name, phone, email, legalID, address)
	s.clients = append(s.clients, c)
	s.propagate("clients", func(ctx context.Context) error {
		return s.remote.CreateClient(ctx, c)
	})
	return c.ID
}

// decrementStock baixa o estoque do produto com o nome informado. Produto
// desconhecido não é um erro: a venda ou troca é registrada mesmo assim,
// sem efeito sobre o estoque.
func (s *Store) decrementStock(productName string, quantity int) {
	for i := range s.products {
		if s.products[i].Name == productName {
			s.products[i].DailyStock -= quantity
			return
		}
	}
}

// propagate dispara uma escrita para a API de registros sem aguardar o
// resultado. O estado local já foi alterado e permanece como fonte de
// verdade da sessão; uma falha aqui nunca desfaz nem bloqueia a operação
// que a originou.
func (s *Store) propagate(resource string, fn func(ctx context.Context) error) {
	if s.remote == nil {
		return
	}

	go func() {
		if err := fn(context.Background()); err != nil {
			metrics.PropagationTotal.WithLabelValues(resource, metrics.ResultError).Inc()
			s.logger.Warn("falha ao propagar registro para a API de registros", "recurso", resource, "error", err)
			return
		}
		metrics.PropagationTotal.WithLabelValues(resource, metrics.ResultOK).Inc()
	}()
}

// Products retorna uma cópia da lista de produtos do dia
func (s *Store) Products() []product.Product {
	s.mustSession()
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Clients retorna uma cópia da lista de clientes
func (s *Store) Clients() []client.Client {
	s.mustSession()
	out := make([]client.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Sales retorna uma cópia da lista de vendas
func (s *Store) Sales() []sale.Sale {
	s.mustSession()
	out := make([]sale.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// Swaps retorna uma cópia da lista de trocas
func (s *Store) Swaps() []swap.Swap {
	s.mustSession()
	out := make([]swap.Swap, len(s.swaps))
	copy(out, s.swaps)
	return out
}

// FindProduct busca um produto pelo nome
func (s *Store) FindProduct(name string) (product.Product, bool) {
	s.mustSession()
	for _, p := range s.products {
		if p.Name == name {
			return p, true
		}
	}
	return product.Product{}, false
}

// FindClient busca um cliente pelo ID
func (s *Store) FindClient(id string) (client.Client, bool) {
	s.mustSession()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return client.Client{}, false
}

// ClientPurchaseTotal soma as quantidades compradas por um cliente na
// sessão, para o resumo da tela de clientes.
func (s *Store) ClientPurchaseTotal(clientID string) int {
	s.mustSession()
	total := 0
	for _, v := range s.sales {
		if v.ClientID == clientID {
			total += v.Quantity
		}
	}
	return total
}
