package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
)

func (s *RepositorySuite) TestHistory() {
	sh := model.ScriptHash{0x01}
	other := model.ScriptHash{0x02}
	s.seedHistory([]historyRow{
		{scriptHash: sh, txid: txid("c"), height: 0, delta: -10, version: 1},
		{scriptHash: sh, txid: txid("b"), height: 120, position: 3, delta: 10, version: 1},
		{scriptHash: sh, txid: txid("a"), height: 120, position: 1, delta: 20, version: 1},
		{scriptHash: sh, txid: txid("d"), height: 7, position: 9, delta: 30, version: 1},
		{scriptHash: other, txid: txid("e"), height: 1, delta: 1, version: 1},
		{coin: model.LTC, scriptHash: sh, txid: txid("f"), height: 1, delta: 1, version: 1},
	})

	s.metrics.EXPECT().Observe("history", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	history, err := s.repo.History(s.testCtx, sh)
	s.Require().NoError(err)
	s.Require().Len(history, 4)

	var got []string
	for _, entry := range history {
		got = append(got, entry.TxID.String())
	}
	s.Equal([]string{txid("d"), txid("a"), txid("b"), txid("c")}, got)
	s.Equal(uint32(0), history[3].Height)
	s.Equal(int64(-10), history[3].Delta)
}

func (s *RepositorySuite) TestHistory_ConfirmationReplacesMempoolRow() {
	sh := model.ScriptHash{0x03}
	s.seedHistory([]historyRow{
		{scriptHash: sh, txid: txid("a"), height: 0, delta: 5, version: 1},
		{scriptHash: sh, txid: txid("a"), height: 50, position: 2, delta: 5, version: 2},
	})

	s.metrics.EXPECT().Observe("history", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	history, err := s.repo.History(s.testCtx, sh)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(uint32(50), history[0].Height)
}

func (s *RepositorySuite) TestListUnspent_MinConf() {
	sh := model.ScriptHash{0x04}
	s.seedTip(99, 1)
	s.seedTip(100, 2)
	s.seedUtxos([]utxoRow{
		{scriptHash: sh, txid: txid("a"), vout: 0, value: 600, height: 95, version: 1},
		{scriptHash: sh, txid: txid("b"), vout: 1, value: 500, height: 96, version: 1},
		{scriptHash: sh, txid: txid("c"), vout: 0, value: 1, height: 0, version: 1},
		{scriptHash: sh, txid: txid("d"), vout: 0, value: 9, height: 90, version: 1},
		{scriptHash: sh, txid: txid("d"), vout: 0, value: 9, height: 90, spent: true, version: 2},
	})

	s.metrics.EXPECT().Observe("list_unspent", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(3)

	utxos, err := s.repo.ListUnspent(s.testCtx, sh, 6)
	s.Require().NoError(err)
	s.Require().Len(utxos, 1)
	s.Equal(txid("a"), utxos[0].TxID.String())
	s.Equal(uint32(6), utxos[0].Confirmations)

	utxos, err = s.repo.ListUnspent(s.testCtx, sh, 1)
	s.Require().NoError(err)
	s.Len(utxos, 2)

	utxos, err = s.repo.ListUnspent(s.testCtx, sh, 0)
	s.Require().NoError(err)
	s.Require().Len(utxos, 3)
	s.Equal(uint32(0), utxos[2].Confirmations)
}

func (s *RepositorySuite) TestBalance() {
	sh := model.ScriptHash{0x05}
	s.seedUtxos([]utxoRow{
		{scriptHash: sh, txid: txid("a"), vout: 0, value: 600, height: 95, version: 1},
		{scriptHash: sh, txid: txid("b"), vout: 0, value: 500, height: 96, version: 1},
		{scriptHash: sh, txid: txid("c"), vout: 0, value: 7, height: 0, version: 1},
		{scriptHash: sh, txid: txid("d"), vout: 0, value: 1000, height: 10, spent: true, version: 1},
	})

	s.metrics.EXPECT().Observe("balance", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(2)

	balance, err := s.repo.Balance(s.testCtx, sh)
	s.Require().NoError(err)
	s.Equal(model.Balance{Confirmed: 1100, Unconfirmed: 7}, balance)

	empty, err := s.repo.Balance(s.testCtx, model.ScriptHash{0x06})
	s.Require().NoError(err)
	s.Equal(model.Balance{}, empty)
}
