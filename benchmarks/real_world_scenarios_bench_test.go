package xvec_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pavanmanishd/xvec"
)

// BenchmarkWebServerScenarios simulates real web server workloads
func BenchmarkWebServerScenarios(b *testing.B) {

	// HTTP request handler simulation
	b.Run("HTTPRequestHandler", func(b *testing.B) {
		b.Run("Arena", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Each request gets its own byte arena for buffers
				a := xvec.NewArena[byte](8192)

				requestBody := xvec.NewWith[byte](a)
				requestBody.Resize(1024) // request body buffer
				responseBody := xvec.NewWith[byte](a)
				responseBody.Resize(2048) // response body buffer
				headers := xvec.New[string]()
				tempValues := xvec.New[int64]()

				// Simulate some work
				for j := 0; j < 20; j++ {
					headers.Append("header")
				}
				for j := 0; j < 50; j++ {
					tempValues.Append(int64(j))
				}
				requestBody.Set(0, 1)
				responseBody.Set(0, 2)

				// Request complete - buffers released in one call
				a.Release()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Simulate request processing with regular allocations
				requestBody := make([]byte, 1024)
				responseBody := make([]byte, 2048)
				headers := make([]string, 0, 20)
				tempValues := make([]int64, 0, 50)

				// Simulate some work
				for j := 0; j < 20; j++ {
					headers = append(headers, "header")
				}
				for j := 0; j < 50; j++ {
					tempValues = append(tempValues, int64(j))
				}
				requestBody[0] = 1
				responseBody[0] = 2

				// Let GC clean up
			}
		})
	})

	// Connection pool simulation
	b.Run("ConnectionPool", func(b *testing.B) {
		const numConnections = 100

		b.Run("Arena_PerConnection", func(b *testing.B) {
			// Each connection has its own arena
			arenas := make([]*xvec.ArenaAllocator[byte], numConnections)
			for i := range arenas {
				arenas[i] = xvec.NewArena[byte](4096)
			}
			defer func() {
				for _, a := range arenas {
					a.Release()
				}
			}()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				connID := i % numConnections
				a := arenas[connID]

				// Simulate connection-specific temporary data
				buffer := xvec.NewWith[byte](a)
				buffer.Resize(256)
				buffer.Set(0, byte(i))

				// Reset connection arena periodically
				if i%1000 == 999 {
					a.Reset()
				}
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Simulate connection-specific temporary data
				buffer := make([]byte, 256)
				buffer[0] = byte(i)
			}
		})
	})
}

// BenchmarkDatabaseScenarios simulates database operation workloads
func BenchmarkDatabaseScenarios(b *testing.B) {

	type DatabaseRow struct {
		ID        int64
		Name      string
		Email     string
		Data      [128]byte
		CreatedAt time.Time
	}

	b.Run("QueryResultProcessing", func(b *testing.B) {
		const rowsPerQuery = 1000

		b.Run("Arena", func(b *testing.B) {
			a := xvec.NewArena[DatabaseRow](4096)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Simulate processing query results
				rows := xvec.NewWith[DatabaseRow](a)
				rows.Resize(rowsPerQuery)

				// Populate rows (simulate database driver work)
				for j := 0; j < rows.Len(); j++ {
					rows.Set(j, DatabaseRow{
						ID:        int64(j),
						Name:      "John Doe",
						Email:     "john@example.com",
						CreatedAt: time.Now(),
					})
				}

				// Process rows (simulate business logic)
				var sum int64
				for row := range rows.Values() {
					sum += row.ID
				}

				// Reset arena after processing query
				a.Reset()
			}
		})

		b.Run("Heap", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				rows := xvec.New[DatabaseRow]()
				rows.Resize(rowsPerQuery)

				for j := 0; j < rows.Len(); j++ {
					rows.Set(j, DatabaseRow{
						ID:        int64(j),
						Name:      "John Doe",
						Email:     "john@example.com",
						CreatedAt: time.Now(),
					})
				}

				var sum int64
				for row := range rows.Values() {
					sum += row.ID
				}
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Simulate processing query results
				rows := make([]DatabaseRow, rowsPerQuery)

				// Populate rows
				for j := range rows {
					rows[j].ID = int64(j)
					rows[j].Name = "John Doe"
					rows[j].Email = "john@example.com"
					rows[j].CreatedAt = time.Now()
				}

				// Process rows
				var sum int64
				for _, row := range rows {
					sum += row.ID
				}
			}
		})
	})

	b.Run("TransactionProcessing", func(b *testing.B) {
		type Transaction struct {
			ID       int64
			FromID   int64
			ToID     int64
			Amount   float64
			Metadata map[string]string
		}

		b.Run("Arena", func(b *testing.B) {
			a := xvec.NewArena[Transaction](1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Process a batch of transactions
				transactions := xvec.NewWith[Transaction](a)
				for j := 0; j < 100; j++ {
					transactions.Append(Transaction{
						ID:       int64(j),
						FromID:   int64(j * 2),
						ToID:     int64(j*2 + 1),
						Amount:   float64(j * 100),
						Metadata: map[string]string{"type": "transfer"},
					})
				}

				// Validate and process transactions
				for tx := range transactions.Values() {
					if tx.Amount > 0 {
						// Simulate processing
						_ = tx.FromID + tx.ToID
					}
				}

				a.Reset()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Process a batch of transactions
				transactions := make([]Transaction, 0, 100)
				for j := 0; j < 100; j++ {
					transactions = append(transactions, Transaction{
						ID:       int64(j),
						FromID:   int64(j * 2),
						ToID:     int64(j*2 + 1),
						Amount:   float64(j * 100),
						Metadata: map[string]string{"type": "transfer"},
					})
				}

				// Validate and process transactions
				for _, tx := range transactions {
					if tx.Amount > 0 {
						// Simulate processing
						_ = tx.FromID + tx.ToID
					}
				}
			}
		})
	})
}

// BenchmarkDocumentScenarios simulates document parsing workloads
func BenchmarkDocumentScenarios(b *testing.B) {

	type DocumentNode struct {
		ID    int64
		Name  string
		Value float64
		Tags  []string
	}

	b.Run("DocumentParsing", func(b *testing.B) {
		b.Run("Arena", func(b *testing.B) {
			a := xvec.NewArena[DocumentNode](256)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Simulate parsing a document into a node list
				children := xvec.NewWith[DocumentNode](a)
				for j := 0; j < 10; j++ {
					tags := xvec.New[string]()
					for k := 0; k < 3; k++ {
						tags.Append(fmt.Sprintf("tag_%d", k))
					}
					children.Append(DocumentNode{
						ID:    int64(j),
						Name:  fmt.Sprintf("child_%d", j),
						Value: float64(j) * 2.5,
						Tags:  tags.Slice(),
					})
				}

				// Simulate processing the parsed data
				var sum float64
				for child := range children.Values() {
					sum += child.Value
				}

				a.Reset()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Simulate parsing a document into a node list
				children := make([]DocumentNode, 0, 10)
				for j := 0; j < 10; j++ {
					tags := make([]string, 0, 3)
					for k := 0; k < 3; k++ {
						tags = append(tags, fmt.Sprintf("tag_%d", k))
					}
					children = append(children, DocumentNode{
						ID:    int64(j),
						Name:  fmt.Sprintf("child_%d", j),
						Value: float64(j) * 2.5,
						Tags:  tags,
					})
				}

				// Simulate processing the parsed data
				var sum float64
				for _, child := range children {
					sum += child.Value
				}
			}
		})
	})
}

// BenchmarkGraphAlgorithmScenarios simulates graph processing workloads
func BenchmarkGraphAlgorithmScenarios(b *testing.B) {

	type GraphNode struct {
		ID       int
		Value    int64
		Edges    [5]int
		Visited  bool
		Distance int
	}

	b.Run("GraphTraversal", func(b *testing.B) {
		const numNodes = 1000

		b.Run("Arena", func(b *testing.B) {
			nodeArena := xvec.NewArena[GraphNode](4096)
			queueArena := xvec.NewArena[int](4096)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Create graph nodes
				nodes := xvec.NewWith[GraphNode](nodeArena)
				nodes.Resize(numNodes)
				for j := 0; j < numNodes; j++ {
					n := GraphNode{ID: j, Value: int64(j * 2)}
					for k := range n.Edges {
						n.Edges[k] = (j + k + 1) % numNodes
					}
					nodes.Set(j, n)
				}

				// Simulate graph traversal (BFS-like)
				queue := xvec.NewWith[int](queueArena)
				queue.Append(0)
				start := nodes.Get(0)
				start.Visited = true
				nodes.Set(0, start)

				for head := 0; head < queue.Len(); head++ {
					current := nodes.Get(queue.Get(head))

					for _, targetID := range current.Edges {
						neighbor := nodes.Get(targetID)
						if !neighbor.Visited {
							neighbor.Visited = true
							neighbor.Distance = current.Distance + 1
							nodes.Set(targetID, neighbor)
							queue.Append(targetID)
						}
					}
				}

				nodeArena.Reset()
				queueArena.Reset()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				// Create graph nodes
				nodes := make([]GraphNode, numNodes)
				for j := range nodes {
					nodes[j].ID = j
					nodes[j].Value = int64(j * 2)
					for k := range nodes[j].Edges {
						nodes[j].Edges[k] = (j + k + 1) % numNodes
					}
				}

				// Simulate graph traversal (BFS-like)
				queue := make([]int, 0, numNodes)
				queue = append(queue, 0)
				nodes[0].Visited = true

				for head := 0; head < len(queue); head++ {
					current := nodes[queue[head]]

					for _, targetID := range current.Edges {
						if !nodes[targetID].Visited {
							nodes[targetID].Visited = true
							nodes[targetID].Distance = current.Distance + 1
							queue = append(queue, targetID)
						}
					}
				}
			}
		})
	})
}

// BenchmarkConcurrentWorkloadScenarios tests concurrent scenarios
func BenchmarkConcurrentWorkloadScenarios(b *testing.B) {

	b.Run("WorkerPoolPattern", func(b *testing.B) {
		const numWorkers = 8
		const jobsPerWorker = 100

		b.Run("Arena_PerWorker", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var wg sync.WaitGroup
				wg.Add(numWorkers)

				for w := 0; w < numWorkers; w++ {
					go func(workerID int) {
						defer wg.Done()

						// Each worker gets its own arena
						a := xvec.NewArena[byte](64 * 1024)
						defer a.Release()

						for j := 0; j < jobsPerWorker; j++ {
							// Simulate job processing
							buffer := xvec.NewWith[byte](a)
							buffer.Resize(512)
							buffer.Set(0, byte(workerID))

							if j%50 == 49 {
								a.Reset()
							}
						}
					}(w)
				}

				wg.Wait()
			}
		})

		b.Run("SafeVector_Shared", func(b *testing.B) {
			s := xvec.NewSafe[int64]()

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var wg sync.WaitGroup
				wg.Add(numWorkers)

				for w := 0; w < numWorkers; w++ {
					go func(workerID int) {
						defer wg.Done()

						for j := 0; j < jobsPerWorker; j++ {
							// Publish job results into the shared vector
							s.Append(int64(workerID*jobsPerWorker + j))
						}
					}(w)
				}

				wg.Wait()
				s.Reset()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var wg sync.WaitGroup
				wg.Add(numWorkers)

				for w := 0; w < numWorkers; w++ {
					go func(workerID int) {
						defer wg.Done()

						for j := 0; j < jobsPerWorker; j++ {
							// Simulate job processing
							buffer := make([]byte, 512)
							buffer[0] = byte(workerID)
						}
					}(w)
				}

				wg.Wait()
			}
		})
	})
}
